package web

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/teacher-dashboard/internal/dashboard"
	"github.com/noah-isme/teacher-dashboard/internal/middleware"
	"github.com/noah-isme/teacher-dashboard/internal/utils"
)

// Server turns dashboard form posts into controller calls and renders the page.
// Handlers run one at a time so the page and the controller always change together.
type Server struct {
	mu         sync.Mutex
	controller *dashboard.Controller
	page       *Page
	appName    string
	logger     zerolog.Logger
}

// NewServer constructs the dashboard server. page must be the view the controller drives.
func NewServer(controller *dashboard.Controller, page *Page, appName string, logger zerolog.Logger) *Server {
	return &Server{
		controller: controller,
		page:       page,
		appName:    appName,
		logger:     logger.With().Str("component", "dashboard_server").Logger(),
	}
}

// Register attaches the dashboard routes.
func (s *Server) Register(router fiber.Router) {
	router.Get("/", s.serial(s.render))
	router.Post("/login", s.serial(s.login))
	router.Post("/logout", s.serial(s.logout))
	router.Post("/classes/select", s.serial(s.selectClass))
	router.Post("/roster/enroll", s.serial(s.enroll))
	router.Post("/quizzes", s.serial(s.createQuiz))
	router.Post("/quizzes/:id/questions/open", s.serial(s.openQuestion))
	router.Post("/questions/close", s.serial(s.closeQuestion))
	router.Post("/quizzes/:id/questions", s.serial(s.saveQuestion))
	router.Post("/quizzes/:id/assign", s.serial(s.assignQuiz))
}

func (s *Server) serial(handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return handler(c)
	}
}

func (s *Server) render(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, s.page.snapshot(s.appName)); err != nil {
		s.requestLogger(c).Error().Err(err).Msg("failed to render dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to render dashboard")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	s.page.setUsername(username)
	err := s.controller.Login(c.UserContext(), username, c.FormValue("password"))
	return s.settle(c, dashboard.ActionLogin, err)
}

func (s *Server) logout(c *fiber.Ctx) error {
	s.controller.Logout()
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) selectClass(c *fiber.Ctx) error {
	classID, err := formID(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	s.page.setSelectedClass(classID)
	return s.settle(c, dashboard.ActionSelectClass, s.controller.SelectClass(c.UserContext(), classID))
}

func (s *Server) enroll(c *fiber.Ctx) error {
	classID, err := formID(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := formID(c, "user_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return s.settle(c, dashboard.ActionEnroll, s.controller.Enroll(c.UserContext(), classID, studentID))
}

func (s *Server) createQuiz(c *fiber.Ctx) error {
	name := c.FormValue("name")
	s.page.setQuizName(name)
	return s.settle(c, dashboard.ActionCreateQuiz, s.controller.CreateQuiz(c.UserContext(), name))
}

func (s *Server) openQuestion(c *fiber.Ctx) error {
	quizID, err := paramID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	s.controller.OpenAddQuestion(quizID, c.FormValue("quiz_name"))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) closeQuestion(c *fiber.Ctx) error {
	s.controller.CloseAddQuestion()
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) saveQuestion(c *fiber.Ctx) error {
	quizID, err := paramID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	position, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("correct_answer")))
	form := QuestionForm{
		Text:            c.FormValue("question_text"),
		Options:         [3]string{c.FormValue("option1"), c.FormValue("option2"), c.FormValue("option3")},
		CorrectPosition: position,
	}
	s.page.setQuestionForm(form)

	err = s.controller.SaveQuestion(c.UserContext(), quizID, dashboard.QuestionInput{
		Text:            form.Text,
		Options:         form.Options,
		CorrectPosition: form.CorrectPosition,
	})
	return s.settle(c, dashboard.ActionSaveQuestion, err)
}

func (s *Server) assignQuiz(c *fiber.Ctx) error {
	quizID, err := paramID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	classID, err := formID(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return s.settle(c, dashboard.ActionAssignQuiz, s.controller.AssignQuiz(c.UserContext(), quizID, classID))
}

// settle logs the outcome of an action and sends the browser back to the page.
// The controller has already told the teacher what happened.
func (s *Server) settle(c *fiber.Ctx, action dashboard.Action, err error) error {
	if err != nil {
		logger := s.requestLogger(c)
		switch {
		case dashboard.IsValidation(err), dashboard.IsRejected(err),
			errors.Is(err, dashboard.ErrActionInFlight), errors.Is(err, dashboard.ErrNotLoggedIn):
			logger.Debug().Err(err).Str("action", string(action)).Msg("dashboard action not completed")
		default:
			logger.Warn().Err(err).Str("action", string(action)).Msg("dashboard action failed")
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) requestLogger(c *fiber.Ctx) *zerolog.Logger {
	logger := s.logger
	if correlation := middleware.GetCorrelationID(c); correlation != "" {
		logger = s.logger.With().Str("correlation_id", correlation).Logger()
	}
	return &logger
}

// formID parses an id form field. A missing or empty field is the placeholder, 0.
func formID(c *fiber.Ctx, key string) (int64, error) {
	value := strings.TrimSpace(c.FormValue(key))
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return id, nil
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid quiz id")
	}
	return id, nil
}
