package web

import (
	"encoding/json"
	"html"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/noah-isme/teacher-dashboard/internal/chart"
	"github.com/noah-isme/teacher-dashboard/internal/dashboard"
)

// QuestionForm holds the add-question inputs between renders.
type QuestionForm struct {
	Text            string
	Options         [3]string
	CorrectPosition int
}

// Page is the server-side state of the dashboard document. It implements
// dashboard.View and chart.Surface.
type Page struct {
	mu     sync.Mutex
	policy *bluemonday.Policy

	loggedIn      bool
	title         string
	username      string
	notices       []string
	classOptions  []dashboard.Option
	selectedClass int64
	rosterVisible bool
	students      []dashboard.Option
	quizzes       []dashboard.QuizItem
	quizName      string
	modalOpen     bool
	modalQuizID   int64
	modalTitle    string
	question      QuestionForm
	busy          map[dashboard.Action]bool

	chartConfig     []byte
	chartGeneration uint64
}

// NewPage returns a page showing the login view.
func NewPage() *Page {
	return &Page{
		policy: bluemonday.StrictPolicy(),
		busy:   make(map[dashboard.Action]bool),
	}
}

// plain strips markup from backend-supplied text; html/template escapes it again on output.
func (p *Page) plain(text string) string {
	return html.UnescapeString(p.policy.Sanitize(text))
}

func (p *Page) ShowLogin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loggedIn = false
	p.selectedClass = 0
	p.quizName = ""
	p.question = QuestionForm{}
}

func (p *Page) ShowDashboard(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loggedIn = true
	p.title = p.plain(title)
}

func (p *Page) ClearLoginFields() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.username = ""
}

func (p *Page) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, p.plain(message))
}

func (p *Page) SetClassOptions(options []dashboard.Option) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.classOptions = p.cleanOptions(options)
	p.selectedClass = 0
}

func (p *Page) SetRosterVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rosterVisible = visible
}

func (p *Page) SetStudentOptions(options []dashboard.Option) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.students = p.cleanOptions(options)
}

func (p *Page) SetQuizzes(items []dashboard.QuizItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cleaned := make([]dashboard.QuizItem, 0, len(items))
	for _, item := range items {
		cleaned = append(cleaned, dashboard.QuizItem{ID: item.ID, Name: p.plain(item.Name)})
	}
	p.quizzes = cleaned
}

func (p *Page) ClearQuizName() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quizName = ""
}

func (p *Page) OpenQuestionModal(quizID int64, title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalOpen = true
	p.modalQuizID = quizID
	p.modalTitle = p.plain(title)
}

func (p *Page) CloseQuestionModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalOpen = false
	p.modalQuizID = 0
	p.modalTitle = ""
}

func (p *Page) ClearQuestionForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.question = QuestionForm{CorrectPosition: p.question.CorrectPosition}
}

func (p *Page) SetBusy(action dashboard.Action, busy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if busy {
		p.busy[action] = true
		return
	}
	delete(p.busy, action)
}

// Draw stores the chart configuration for the browser to draw on the canvas.
func (p *Page) Draw(canvasID string, cfg chart.Config) (chart.Instance, error) {
	encoded, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.chartGeneration++
	p.chartConfig = encoded
	return &pageChart{page: p, generation: p.chartGeneration}, nil
}

type pageChart struct {
	page       *Page
	generation uint64
}

// Destroy clears the chart unless a newer one has replaced it.
func (c *pageChart) Destroy() {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	if c.page.chartGeneration == c.generation {
		c.page.chartConfig = nil
	}
}

// Form setters mirror what the browser keeps in its inputs between requests.

func (p *Page) setUsername(username string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.username = username
}

func (p *Page) setSelectedClass(classID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedClass = classID
}

func (p *Page) SelectedClass() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectedClass
}

func (p *Page) setQuizName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quizName = name
}

func (p *Page) setQuestionForm(form QuestionForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.question = form
}

func (p *Page) cleanOptions(options []dashboard.Option) []dashboard.Option {
	cleaned := make([]dashboard.Option, 0, len(options))
	for _, option := range options {
		cleaned = append(cleaned, dashboard.Option{Value: option.Value, Label: p.plain(option.Label)})
	}
	return cleaned
}

// pageData is the template's read-only snapshot of a Page.
type pageData struct {
	AppName       string
	LoggedIn      bool
	Title         string
	Username      string
	Notices       []string
	ClassOptions  []dashboard.Option
	SelectedClass int64
	RosterVisible bool
	Students      []dashboard.Option
	Quizzes       []dashboard.QuizItem
	QuizName      string
	ModalOpen     bool
	ModalQuizID   int64
	ModalTitle    string
	Question      QuestionForm
	Busy          map[string]bool
	CanvasID      string
	ChartConfig   template.JS
}

// snapshot copies the page for rendering and consumes pending notices.
func (p *Page) snapshot(appName string) pageData {
	p.mu.Lock()
	defer p.mu.Unlock()

	busy := make(map[string]bool, len(p.busy))
	for action, value := range p.busy {
		busy[string(action)] = value
	}

	data := pageData{
		AppName:       appName,
		LoggedIn:      p.loggedIn,
		Title:         p.title,
		Username:      p.username,
		Notices:       p.notices,
		ClassOptions:  append([]dashboard.Option(nil), p.classOptions...),
		SelectedClass: p.selectedClass,
		RosterVisible: p.rosterVisible,
		Students:      append([]dashboard.Option(nil), p.students...),
		Quizzes:       append([]dashboard.QuizItem(nil), p.quizzes...),
		QuizName:      p.quizName,
		ModalOpen:     p.modalOpen,
		ModalQuizID:   p.modalQuizID,
		ModalTitle:    p.modalTitle,
		Question:      p.question,
		Busy:          busy,
		CanvasID:      chart.CanvasID,
	}
	if len(p.chartConfig) > 0 {
		data.ChartConfig = template.JS(p.chartConfig)
	}
	p.notices = nil
	return data
}
