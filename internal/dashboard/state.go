package dashboard

import (
	"sync"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

// Session is the logged-in teacher. It is replaced wholesale on login and cleared on logout.
type Session struct {
	TeacherID   int64
	DisplayName string
	Classes     []dto.ClassSummary
}

// QuizContext is the quiz the add-question modal was last opened for.
type QuizContext struct {
	QuizID   int64
	QuizName string
}

type state struct {
	mu         sync.RWMutex
	session    *Session
	activeQuiz *QuizContext
}

func (s *state) setSession(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	classes := make([]dto.ClassSummary, len(session.Classes))
	copy(classes, session.Classes)
	session.Classes = classes
	s.session = &session
}

func (s *state) currentSession() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *state) setActiveQuiz(quiz QuizContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeQuiz = &quiz
}

func (s *state) currentQuiz() (QuizContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeQuiz == nil {
		return QuizContext{}, false
	}
	return *s.activeQuiz, true
}

// clearQuiz clears the modal context; a non-zero quizID only clears a matching context.
func (s *state) clearQuiz(quizID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeQuiz == nil {
		return
	}
	if quizID != 0 && s.activeQuiz.QuizID != quizID {
		return
	}
	s.activeQuiz = nil
}

func (s *state) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.activeQuiz = nil
}

// inflight tracks which actions currently have a request outstanding.
type inflight struct {
	mu      sync.Mutex
	running map[Action]struct{}
}

func (f *inflight) begin(action Action) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running == nil {
		f.running = make(map[Action]struct{})
	}
	if _, busy := f.running[action]; busy {
		return false
	}
	f.running[action] = struct{}{}
	return true
}

func (f *inflight) end(action Action) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.running, action)
}
