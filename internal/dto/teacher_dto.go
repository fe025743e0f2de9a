package dto

// LoginRequest is the credential payload for the teacher login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by the teacher login endpoint.
type LoginResponse struct {
	Success   bool           `json:"success"`
	Username  string         `json:"username"`
	TeacherID int64          `json:"teacher_id"`
	Classes   []ClassSummary `json:"classes"`
	Message   string         `json:"message,omitempty"`
}

// ClassSummary identifies a class managed by the teacher.
type ClassSummary struct {
	ID        int64  `json:"id"`
	ClassName string `json:"class_name"`
}

// StudentSummary identifies a student that can be enrolled.
type StudentSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// QuizSummary identifies a quiz owned by the teacher.
type QuizSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActionResponse is the generic success envelope returned by mutating endpoints.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
