package dashboard

import (
	"strings"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

// QuestionInput is the add-question form as the teacher filled it in.
// CorrectPosition is the 1-based position of the correct option.
type QuestionInput struct {
	Text            string
	Options         [3]string
	CorrectPosition int
}

type questionDraft struct {
	QuizID          int64    `json:"quiz_id" validate:"gt=0"`
	QuestionText    string   `json:"question_text" validate:"required"`
	Options         []string `json:"options" validate:"len=3,dive,required"`
	CorrectPosition int      `json:"correct_position" validate:"min=1,max=3"`
}

// BuildLoginRequest validates the login form.
func BuildLoginRequest(username, password string) (dto.LoginRequest, error) {
	req := dto.LoginRequest{Username: strings.TrimSpace(username), Password: password}
	if fields := validateFields(req); fields != nil {
		return dto.LoginRequest{}, &ValidationError{Message: msgLoginRequired, Fields: fields}
	}
	return req, nil
}

// BuildEnrollRequest requires both a class and a student.
func BuildEnrollRequest(classID, studentID int64) (dto.EnrollRequest, error) {
	req := dto.EnrollRequest{UserID: studentID, ClassID: classID}
	if fields := validateFields(req); fields != nil {
		return dto.EnrollRequest{}, &ValidationError{Message: msgSelectClassStudent, Fields: fields}
	}
	return req, nil
}

// BuildQuizRequest requires a non-blank quiz name.
func BuildQuizRequest(name string, teacherID int64) (dto.QuizCreateRequest, error) {
	req := dto.QuizCreateRequest{Name: strings.TrimSpace(name), TeacherID: teacherID}
	if fields := validateFields(req); fields != nil {
		if _, ok := fields["name"]; !ok {
			return dto.QuizCreateRequest{}, ErrNotLoggedIn
		}
		return dto.QuizCreateRequest{}, &ValidationError{Message: msgQuizNameRequired, Fields: fields}
	}
	return req, nil
}

// BuildQuestionRequest validates the add-question form for the given quiz and resolves
// the correct position to the literal option text.
func BuildQuestionRequest(quizID int64, in QuestionInput) (dto.QuestionCreateRequest, error) {
	options := make([]string, len(in.Options))
	for i, option := range in.Options {
		options[i] = strings.TrimSpace(option)
	}

	draft := questionDraft{
		QuizID:          quizID,
		QuestionText:    strings.TrimSpace(in.Text),
		Options:         options,
		CorrectPosition: in.CorrectPosition,
	}

	if fields := validateFields(draft); fields != nil {
		_, textMissing := fields["question_text"]
		_, optionMissing := fields["options"]
		_, positionInvalid := fields["correct_position"]

		message := msgChooseQuiz
		switch {
		case textMissing || optionMissing:
			message = msgFillAllFields
		case positionInvalid:
			message = msgChooseAnswer
		}
		return dto.QuestionCreateRequest{}, &ValidationError{Message: message, Fields: fields}
	}

	return dto.QuestionCreateRequest{
		QuizID:        quizID,
		QuestionText:  draft.QuestionText,
		Options:       options,
		CorrectAnswer: options[in.CorrectPosition-1],
	}, nil
}

// BuildAssignRequest requires a class to be selected.
func BuildAssignRequest(quizID, classID int64) (dto.AssignRequest, error) {
	req := dto.AssignRequest{QuizID: quizID, ClassID: classID}
	if fields := validateFields(req); fields != nil {
		return dto.AssignRequest{}, &ValidationError{Message: msgAssignNeedsClass, Fields: fields}
	}
	return req, nil
}

func classOptions(classes []dto.ClassSummary) []Option {
	options := make([]Option, 0, len(classes)+1)
	options = append(options, Option{Value: 0, Label: placeholderClass})
	for _, class := range classes {
		options = append(options, Option{Value: class.ID, Label: class.ClassName})
	}
	return options
}

func studentOptions(students []dto.StudentSummary) []Option {
	placeholder := placeholderStudent
	if len(students) == 0 {
		placeholder = placeholderAllEnrolled
	}
	options := make([]Option, 0, len(students)+1)
	options = append(options, Option{Value: 0, Label: placeholder})
	for _, student := range students {
		options = append(options, Option{Value: student.ID, Label: student.Username})
	}
	return options
}

func quizItems(quizzes []dto.QuizSummary) []QuizItem {
	items := make([]QuizItem, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, QuizItem{ID: quiz.ID, Name: quiz.Name})
	}
	return items
}
