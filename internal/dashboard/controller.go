package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/teacher-dashboard/internal/chart"
	"github.com/noah-isme/teacher-dashboard/internal/client"
	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

// API is the slice of the quiz backend the dashboard uses.
type API interface {
	Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
	ListQuizzes(ctx context.Context, teacherID int64) ([]dto.QuizSummary, error)
	CreateQuiz(ctx context.Context, payload dto.QuizCreateRequest) (dto.QuizCreateResponse, error)
	UnassignedStudents(ctx context.Context, classID int64) ([]dto.StudentSummary, error)
	Enroll(ctx context.Context, payload dto.EnrollRequest) (dto.ActionResponse, error)
	Analytics(ctx context.Context, classID int64) (dto.ChartData, error)
	AddQuestion(ctx context.Context, payload dto.QuestionCreateRequest) (dto.ActionResponse, error)
	AssignQuiz(ctx context.Context, payload dto.AssignRequest) (dto.ActionResponse, error)
}

// Controller turns teacher actions into backend calls and backend answers into view updates.
type Controller struct {
	api      API
	view     View
	chart    *chart.Handle
	timeout  time.Duration
	logger   zerolog.Logger
	state    state
	inflight inflight
}

// NewController wires a controller. A non-positive timeout disables the per-request deadline.
func NewController(api API, view View, charts *chart.Handle, timeout time.Duration, logger zerolog.Logger) *Controller {
	return &Controller{
		api:     api,
		view:    view,
		chart:   charts,
		timeout: timeout,
		logger:  logger.With().Str("component", "dashboard_controller").Logger(),
	}
}

// Session returns the logged-in teacher, if any.
func (c *Controller) Session() (Session, bool) {
	return c.state.currentSession()
}

// ActiveQuiz returns the quiz the add-question modal is open for, if any.
func (c *Controller) ActiveQuiz() (QuizContext, bool) {
	return c.state.currentQuiz()
}

// Login authenticates the teacher, then loads the dashboard.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	req, err := BuildLoginRequest(username, password)
	if err != nil {
		return c.reject(err)
	}

	done, err := c.begin(ActionLogin)
	if err != nil {
		return err
	}
	resp, err := c.callLogin(ctx, req)
	done()
	if err != nil {
		return c.failure(ActionLogin, err, fmt.Sprintf(msgLoginFailed, "unexpected server response"))
	}

	if !resp.Success {
		c.view.Notify(fmt.Sprintf(msgLoginFailed, resp.Message))
		return &RejectedError{Action: ActionLogin, Message: resp.Message}
	}

	c.state.setSession(Session{
		TeacherID:   resp.TeacherID,
		DisplayName: resp.Username,
		Classes:     resp.Classes,
	})
	c.logger.Info().Int64("teacher_id", resp.TeacherID).Int("classes", len(resp.Classes)).Msg("teacher logged in")

	c.view.ShowDashboard(fmt.Sprintf(welcomeTitle, resp.Username))
	c.view.SetClassOptions(classOptions(resp.Classes))

	return c.LoadQuizzes(ctx)
}

// Logout resets all client-side state. The backend is not contacted.
func (c *Controller) Logout() {
	c.state.reset()
	c.chart.Release()
	c.view.CloseQuestionModal()
	c.view.SetRosterVisible(false)
	c.view.ShowLogin()
	c.view.ClearLoginFields()
	c.logger.Info().Msg("teacher logged out")
}

// SelectClass reacts to the class control changing. Class 0 is the placeholder.
func (c *Controller) SelectClass(ctx context.Context, classID int64) error {
	if classID == 0 {
		c.view.SetRosterVisible(false)
		c.chart.Release()
		return nil
	}

	done, err := c.begin(ActionSelectClass)
	if err != nil {
		return err
	}
	defer done()

	c.view.SetRosterVisible(true)
	return c.loadClass(ctx, classID)
}

// loadClass fetches the roster and the analytics of a class. Neither failure skips the other.
func (c *Controller) loadClass(ctx context.Context, classID int64) error {
	var errs []error
	if err := c.loadUnassignedStudents(ctx, classID); err != nil {
		errs = append(errs, err)
	}
	if err := c.loadAnalytics(ctx, classID); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Controller) loadUnassignedStudents(ctx context.Context, classID int64) error {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	students, err := c.api.UnassignedStudents(reqCtx, classID)
	if err != nil {
		return c.failure(ActionSelectClass, err, msgStudentsFailed)
	}
	if _, ok := c.state.currentSession(); !ok {
		return nil
	}
	c.view.SetStudentOptions(studentOptions(students))
	return nil
}

func (c *Controller) loadAnalytics(ctx context.Context, classID int64) error {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	data, err := c.api.Analytics(reqCtx, classID)
	if err != nil {
		return c.failure(ActionSelectClass, err, msgAnalyticsFailed)
	}

	if _, ok := c.state.currentSession(); !ok {
		c.logger.Debug().Int64("class_id", classID).Msg("dropped analytics that arrived after logout")
		return nil
	}
	if err := c.chart.Render(data); err != nil {
		c.logger.Error().Err(err).Int64("class_id", classID).Msg("failed to render analytics chart")
		c.view.Notify(msgChartFailed)
		return err
	}
	return nil
}

// Enroll adds the selected student to the selected class, then refreshes the class view.
func (c *Controller) Enroll(ctx context.Context, classID, studentID int64) error {
	req, err := BuildEnrollRequest(classID, studentID)
	if err != nil {
		return c.reject(err)
	}

	done, err := c.begin(ActionEnroll)
	if err != nil {
		return err
	}
	defer done()

	reqCtx, cancel := c.requestContext(ctx)
	resp, err := c.api.Enroll(reqCtx, req)
	cancel()
	if err != nil {
		return c.failure(ActionEnroll, err, fmt.Sprintf(msgEnrollFailed, "could not enroll student"))
	}

	if !resp.Success {
		c.view.Notify(fmt.Sprintf(msgEnrollFailed, resp.Message))
		return &RejectedError{Action: ActionEnroll, Message: resp.Message}
	}

	c.view.Notify(msgEnrolled)
	return c.loadClass(ctx, classID)
}

// LoadQuizzes re-renders the full quiz list of the logged-in teacher.
func (c *Controller) LoadQuizzes(ctx context.Context) error {
	session, ok := c.state.currentSession()
	if !ok {
		return ErrNotLoggedIn
	}

	done, err := c.begin(ActionLoadQuizzes)
	if err != nil {
		return err
	}
	defer done()

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	quizzes, err := c.api.ListQuizzes(reqCtx, session.TeacherID)
	if err != nil {
		return c.failure(ActionLoadQuizzes, err, msgQuizzesFailed)
	}
	c.view.SetQuizzes(quizItems(quizzes))
	return nil
}

// CreateQuiz creates a quiz and reloads the list on success.
func (c *Controller) CreateQuiz(ctx context.Context, name string) error {
	session, ok := c.state.currentSession()
	if !ok {
		return ErrNotLoggedIn
	}

	req, err := BuildQuizRequest(name, session.TeacherID)
	if err != nil {
		return c.reject(err)
	}

	done, err := c.begin(ActionCreateQuiz)
	if err != nil {
		return err
	}
	reqCtx, cancel := c.requestContext(ctx)
	resp, err := c.api.CreateQuiz(reqCtx, req)
	cancel()
	done()
	if err != nil {
		return c.failure(ActionCreateQuiz, err, msgQuizCreateFailed+".")
	}

	if !resp.Success {
		c.view.Notify(withReason(msgQuizCreateFailed, resp.Message))
		return &RejectedError{Action: ActionCreateQuiz, Message: resp.Message}
	}

	c.view.ClearQuizName()
	return c.LoadQuizzes(ctx)
}

// OpenAddQuestion opens the add-question modal for a quiz.
func (c *Controller) OpenAddQuestion(quizID int64, quizName string) {
	c.state.setActiveQuiz(QuizContext{QuizID: quizID, QuizName: quizName})
	c.view.OpenQuestionModal(quizID, fmt.Sprintf(questionModalTitle, quizName))
}

// CloseAddQuestion hides the modal without saving.
func (c *Controller) CloseAddQuestion() {
	c.state.clearQuiz(0)
	c.view.CloseQuestionModal()
}

// SaveQuestion adds a question to quizID. On rejection the modal stays open.
func (c *Controller) SaveQuestion(ctx context.Context, quizID int64, in QuestionInput) error {
	req, err := BuildQuestionRequest(quizID, in)
	if err != nil {
		return c.reject(err)
	}

	done, err := c.begin(ActionSaveQuestion)
	if err != nil {
		return err
	}
	reqCtx, cancel := c.requestContext(ctx)
	resp, err := c.api.AddQuestion(reqCtx, req)
	cancel()
	done()
	if err != nil {
		return c.failure(ActionSaveQuestion, err, msgQuestionFailed+".")
	}

	if !resp.Success {
		c.view.Notify(withReason(msgQuestionFailed, resp.Message))
		return &RejectedError{Action: ActionSaveQuestion, Message: resp.Message}
	}

	c.view.ClearQuestionForm()
	c.view.CloseQuestionModal()
	c.state.clearQuiz(quizID)
	return nil
}

// AssignQuiz assigns quizID to the class currently selected in the class control.
func (c *Controller) AssignQuiz(ctx context.Context, quizID, classID int64) error {
	req, err := BuildAssignRequest(quizID, classID)
	if err != nil {
		return c.reject(err)
	}

	done, err := c.begin(ActionAssignQuiz)
	if err != nil {
		return err
	}
	reqCtx, cancel := c.requestContext(ctx)
	resp, err := c.api.AssignQuiz(reqCtx, req)
	cancel()
	done()
	if err != nil {
		return c.failure(ActionAssignQuiz, err, msgAssignFailed+".")
	}

	if !resp.Success {
		c.view.Notify(withReason(msgAssignFailed, resp.Message))
		return &RejectedError{Action: ActionAssignQuiz, Message: resp.Message}
	}

	c.view.Notify(msgAssigned)
	return nil
}

func (c *Controller) callLogin(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()
	return c.api.Login(reqCtx, req)
}

// begin marks action as running and disables its control. The returned func undoes both.
func (c *Controller) begin(action Action) (func(), error) {
	if !c.inflight.begin(action) {
		c.logger.Debug().Str("action", string(action)).Msg("ignored repeated submission")
		return nil, ErrActionInFlight
	}
	c.view.SetBusy(action, true)
	return func() {
		c.inflight.end(action)
		c.view.SetBusy(action, false)
	}, nil
}

func (c *Controller) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Controller) reject(err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		c.logger.Debug().Interface("fields", validationErr.Fields).Msg("rejected invalid input")
		c.view.Notify(validationErr.Message)
	}
	return err
}

// failure reports a call that produced no usable answer.
func (c *Controller) failure(action Action, err error, message string) error {
	event := c.logger.Error()
	if client.IsUnavailable(err) {
		event = c.logger.Warn()
		message = msgUnavailable
	}
	event.Err(err).Str("action", string(action)).Msg("teacher api call failed")

	if message != "" {
		c.view.Notify(message)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func withReason(prefix, reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return prefix + "."
	}
	return prefix + ": " + reason
}
