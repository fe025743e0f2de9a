package dto

// QuizCreateRequest creates a quiz for a teacher.
type QuizCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	TeacherID int64  `json:"teacher_id" validate:"required,gt=0"`
}

// QuizCreateResponse is returned when a quiz is created.
type QuizCreateResponse struct {
	Success bool   `json:"success"`
	QuizID  int64  `json:"quiz_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// QuestionCreateRequest adds a multiple-choice question to a quiz.
// CorrectAnswer carries the literal text of the correct option.
type QuestionCreateRequest struct {
	QuizID        int64    `json:"quiz_id" validate:"required,gt=0"`
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"len=3,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

// AssignRequest assigns a quiz to a class.
type AssignRequest struct {
	QuizID  int64 `json:"quiz_id" validate:"required,gt=0"`
	ClassID int64 `json:"class_id" validate:"required,gt=0"`
}

// EnrollRequest enrolls a student into a class.
type EnrollRequest struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	ClassID int64 `json:"class_id" validate:"required,gt=0"`
}
