package web

import "html/template"

var pageTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"busy": func(busy map[string]bool, action string) bool { return busy[action] },
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.AppName}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
</head>
<body>
{{range .Notices}}<div class="notice" role="alert">{{.}}</div>
{{end}}
{{if not .LoggedIn}}
<section id="teacher-login-page">
  <form method="post" action="/login">
    <input id="teacher-username" name="username" value="{{.Username}}" placeholder="Username">
    <input id="teacher-password" name="password" type="password" placeholder="Password">
    <button id="teacher-login-btn" type="submit"{{if busy .Busy "login"}} disabled{{end}}>Login</button>
  </form>
</section>
{{else}}
<section id="dashboard-page">
  <h1 id="dashboard-title">{{.Title}}</h1>
  <form method="post" action="/logout"><button id="logout-btn" type="submit">Logout</button></form>

  <form method="post" action="/classes/select">
    <select id="class-select" name="class_id" onchange="this.form.submit()">
      {{range .ClassOptions}}<option value="{{if .Value}}{{.Value}}{{end}}"{{if eq .Value $.SelectedClass}} selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>
    <noscript><button type="submit">Show</button></noscript>
  </form>

  {{if .RosterVisible}}
  <div id="roster-management">
    <form method="post" action="/roster/enroll">
      <input type="hidden" name="class_id" value="{{.SelectedClass}}">
      <select id="unassigned-student-select" name="user_id">
        {{range .Students}}<option value="{{if .Value}}{{.Value}}{{end}}">{{.Label}}</option>
        {{end}}
      </select>
      <button id="enroll-student-btn" type="submit"{{if busy .Busy "enroll"}} disabled{{end}}>Enroll Student</button>
    </form>
  </div>
  {{end}}

  <canvas id="{{.CanvasID}}"></canvas>
  {{if .ChartConfig}}<script>new Chart(document.getElementById({{.CanvasID}}), {{.ChartConfig}});</script>{{end}}

  <form method="post" action="/quizzes">
    <input id="new-quiz-name" name="name" value="{{.QuizName}}" placeholder="New quiz name">
    <button id="create-quiz-btn" type="submit"{{if busy .Busy "create_quiz"}} disabled{{end}}>Create Quiz</button>
  </form>

  <div id="quiz-list">
    {{range .Quizzes}}<div class="quiz-item">
      <span>{{.Name}}</span>
      <div>
        <form method="post" action="/quizzes/{{.ID}}/questions/open">
          <input type="hidden" name="quiz_name" value="{{.Name}}">
          <button class="small-btn add-q" type="submit">Add Question</button>
        </form>
        <form method="post" action="/quizzes/{{.ID}}/assign">
          <input type="hidden" name="class_id" value="{{$.SelectedClass}}">
          <button class="small-btn assign-q" type="submit"{{if busy $.Busy "assign_quiz"}} disabled{{end}}>Assign</button>
        </form>
      </div>
    </div>
    {{end}}
  </div>

  {{if .ModalOpen}}
  <div id="add-question-modal">
    <h2 id="modal-quiz-name">{{.ModalTitle}}</h2>
    <form method="post" action="/questions/close"><button class="close-btn" type="submit">&times;</button></form>
    <form method="post" action="/quizzes/{{.ModalQuizID}}/questions">
      <textarea id="question-text" name="question_text">{{.Question.Text}}</textarea>
      <input id="option1" name="option1" value="{{index .Question.Options 0}}">
      <input id="option2" name="option2" value="{{index .Question.Options 1}}">
      <input id="option3" name="option3" value="{{index .Question.Options 2}}">
      <select id="correct-answer-select" name="correct_answer">
        <option value="1"{{if eq .Question.CorrectPosition 1}} selected{{end}}>Option 1</option>
        <option value="2"{{if eq .Question.CorrectPosition 2}} selected{{end}}>Option 2</option>
        <option value="3"{{if eq .Question.CorrectPosition 3}} selected{{end}}>Option 3</option>
      </select>
      <button id="save-question-btn" type="submit"{{if busy .Busy "save_question"}} disabled{{end}}>Save Question</button>
    </form>
  </div>
  {{end}}
</section>
{{end}}
</body>
</html>
`
