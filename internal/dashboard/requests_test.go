package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

func TestBuildQuestionRequestResolvesAnswerText(t *testing.T) {
	req, err := BuildQuestionRequest(3, QuestionInput{
		Text:            " Which is B? ",
		Options:         [3]string{"A", "B", "C"},
		CorrectPosition: 2,
	})
	require.NoError(t, err)
	require.Equal(t, dto.QuestionCreateRequest{
		QuizID:        3,
		QuestionText:  "Which is B?",
		Options:       []string{"A", "B", "C"},
		CorrectAnswer: "B",
	}, req)
}

func TestBuildQuestionRequestMessages(t *testing.T) {
	cases := []struct {
		name    string
		quizID  int64
		input   QuestionInput
		message string
		field   string
	}{
		{"missing text", 3, QuestionInput{Options: [3]string{"A", "B", "C"}, CorrectPosition: 1}, msgFillAllFields, "question_text"},
		{"blank option", 3, QuestionInput{Text: "q", Options: [3]string{"A", " ", "C"}, CorrectPosition: 1}, msgFillAllFields, "options"},
		{"position too high", 3, QuestionInput{Text: "q", Options: [3]string{"A", "B", "C"}, CorrectPosition: 4}, msgChooseAnswer, "correct_position"},
		{"no position", 3, QuestionInput{Text: "q", Options: [3]string{"A", "B", "C"}}, msgChooseAnswer, "correct_position"},
		{"no quiz", 0, QuestionInput{Text: "q", Options: [3]string{"A", "B", "C"}, CorrectPosition: 1}, msgChooseQuiz, "quiz_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildQuestionRequest(tc.quizID, tc.input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.message, validationErr.Message)
			require.Contains(t, validationErr.Fields, tc.field)
		})
	}
}

func TestBuildLoginRequestTranslatesFields(t *testing.T) {
	_, err := BuildLoginRequest("  ", "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, msgLoginRequired, validationErr.Message)
	require.Equal(t, "username is a required field", validationErr.Fields["username"])
	require.Contains(t, validationErr.Fields, "password")

	req, err := BuildLoginRequest(" frizzle ", " secret ")
	require.NoError(t, err)
	require.Equal(t, dto.LoginRequest{Username: "frizzle", Password: " secret "}, req)
}

func TestBuildQuizRequestWithoutTeacher(t *testing.T) {
	_, err := BuildQuizRequest("Waves", 0)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStudentOptionsPlaceholders(t *testing.T) {
	require.Equal(t, []Option{{Value: 0, Label: placeholderAllEnrolled}}, studentOptions(nil))
	require.Equal(t, []Option{
		{Value: 0, Label: placeholderStudent},
		{Value: 4, Label: "ben"},
	}, studentOptions([]dto.StudentSummary{{ID: 4, Username: "ben"}}))
}
