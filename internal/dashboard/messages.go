package dashboard

const (
	placeholderClass       = "-- Select a Class --"
	placeholderStudent     = "-- Select a student to add --"
	placeholderAllEnrolled = "-- All students enrolled --"

	msgLoginRequired      = "Please enter username and password."
	msgLoginFailed        = "Login failed: %s"
	msgSelectClassStudent = "Please select both a class and a student."
	msgEnrolled           = "Student enrolled successfully!"
	msgEnrollFailed       = "Error: %s"
	msgAnalyticsFailed    = "Could not fetch analytics for this class."
	msgChartFailed        = "Could not draw the analytics chart."
	msgStudentsFailed     = "Could not load students for this class."
	msgQuizzesFailed      = "Could not load quizzes."
	msgQuizNameRequired   = "Please enter a quiz name."
	msgQuizCreateFailed   = "Could not create quiz"
	msgFillAllFields      = "Please fill all fields."
	msgChooseAnswer       = "Please choose the correct answer."
	msgChooseQuiz         = "Please choose a quiz before adding questions."
	msgQuestionFailed     = "Could not save question"
	msgAssignNeedsClass   = "Please select a class from the analytics dropdown first."
	msgAssigned           = "Quiz assigned successfully!"
	msgAssignFailed       = "Could not assign quiz"
	msgUnavailable        = "Could not reach the server. Please try again."

	welcomeTitle       = "Welcome, %s"
	questionModalTitle = "Add Question to: %s"
)
