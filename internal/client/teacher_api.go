package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

// Login exchanges credentials for the teacher's profile and class list.
// A rejected login is reported through Success and Message, not as an error.
func (c *Client) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	const op = "login"
	resp, err := c.call(ctx, op, http.MethodPost, "/api/teacher/login", payload)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	success, message, err := decodeOutcome(op, resp)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	if !success {
		return dto.LoginResponse{Success: false, Message: message}, nil
	}

	var result dto.LoginResponse
	if err := json.Unmarshal(resp.body, &result); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidPayload, err)
	}
	result.Success = true
	if result.Classes == nil {
		result.Classes = make([]dto.ClassSummary, 0)
	}
	return result, nil
}

// ListQuizzes returns every quiz owned by the teacher.
func (c *Client) ListQuizzes(ctx context.Context, teacherID int64) ([]dto.QuizSummary, error) {
	const op = "list_quizzes"
	query := url.Values{"teacher_id": []string{strconv.FormatInt(teacherID, 10)}}
	resp, err := c.call(ctx, op, http.MethodGet, "/api/teacher/quizzes?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[dto.QuizSummary](op, resp)
}

// CreateQuiz creates a quiz. Success follows the HTTP status.
func (c *Client) CreateQuiz(ctx context.Context, payload dto.QuizCreateRequest) (dto.QuizCreateResponse, error) {
	const op = "create_quiz"
	resp, err := c.call(ctx, op, http.MethodPost, "/api/teacher/quizzes", payload)
	if err != nil {
		return dto.QuizCreateResponse{}, err
	}

	success, message, err := decodeOutcome(op, resp)
	if err != nil {
		return dto.QuizCreateResponse{}, err
	}

	result := dto.QuizCreateResponse{}
	_ = json.Unmarshal(resp.body, &result)
	result.Success = success
	result.Message = message
	return result, nil
}

// UnassignedStudents lists students not yet enrolled in the class.
func (c *Client) UnassignedStudents(ctx context.Context, classID int64) ([]dto.StudentSummary, error) {
	const op = "unassigned_students"
	path := fmt.Sprintf("/api/teacher/unassigned_students/%d", classID)
	resp, err := c.call(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[dto.StudentSummary](op, resp)
}

// Enroll adds a student to a class.
func (c *Client) Enroll(ctx context.Context, payload dto.EnrollRequest) (dto.ActionResponse, error) {
	return c.action(ctx, "enroll", "/api/teacher/enroll", payload)
}

// Analytics fetches the pre-aggregated bar chart dataset for a class.
func (c *Client) Analytics(ctx context.Context, classID int64) (dto.ChartData, error) {
	const op = "analytics"
	path := fmt.Sprintf("/api/teacher/analytics/%d", classID)
	resp, err := c.call(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return dto.ChartData{}, err
	}
	if !resp.ok() {
		return dto.ChartData{}, statusError(op, resp)
	}
	if err := validateAgainst(c.chartSchema, resp.body); err != nil {
		return dto.ChartData{}, fmt.Errorf("%s: %w", op, err)
	}

	var data dto.ChartData
	if err := json.Unmarshal(resp.body, &data); err != nil {
		return dto.ChartData{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidPayload, err)
	}
	return data, nil
}

// AddQuestion adds a question to a quiz.
func (c *Client) AddQuestion(ctx context.Context, payload dto.QuestionCreateRequest) (dto.ActionResponse, error) {
	return c.action(ctx, "add_question", "/api/teacher/questions", payload)
}

// AssignQuiz assigns a quiz to a class.
func (c *Client) AssignQuiz(ctx context.Context, payload dto.AssignRequest) (dto.ActionResponse, error) {
	return c.action(ctx, "assign_quiz", "/api/teacher/assign", payload)
}

func (c *Client) action(ctx context.Context, op, path string, payload interface{}) (dto.ActionResponse, error) {
	resp, err := c.call(ctx, op, http.MethodPost, path, payload)
	if err != nil {
		return dto.ActionResponse{}, err
	}
	success, message, err := decodeOutcome(op, resp)
	if err != nil {
		return dto.ActionResponse{}, err
	}
	return dto.ActionResponse{Success: success, Message: message}, nil
}
