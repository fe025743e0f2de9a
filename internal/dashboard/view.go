package dashboard

// Action names a user-triggered operation for in-flight tracking.
type Action string

const (
	ActionLogin        Action = "login"
	ActionSelectClass  Action = "select_class"
	ActionEnroll       Action = "enroll"
	ActionLoadQuizzes  Action = "load_quizzes"
	ActionCreateQuiz   Action = "create_quiz"
	ActionSaveQuestion Action = "save_question"
	ActionAssignQuiz   Action = "assign_quiz"
)

// Option is one entry of a selection control. Value 0 is the placeholder.
type Option struct {
	Value int64
	Label string
}

// QuizItem is one row of the quiz list. Each row offers "Add Question" and "Assign".
type QuizItem struct {
	ID   int64
	Name string
}

// View is everything the controller changes on screen.
type View interface {
	ShowLogin()
	ShowDashboard(title string)
	ClearLoginFields()

	// Notify shows a blocking message to the teacher.
	Notify(message string)

	SetClassOptions(options []Option)
	SetRosterVisible(visible bool)
	SetStudentOptions(options []Option)

	SetQuizzes(items []QuizItem)
	ClearQuizName()

	OpenQuestionModal(quizID int64, title string)
	CloseQuestionModal()
	ClearQuestionForm()

	// SetBusy disables or re-enables the control that triggers action.
	SetBusy(action Action, busy bool)
}
