package main

import (
	"html/template"
	"net/http"

	"github.com/godist/ldagibbs/core/utils"
	"github.com/golang/glog"
)

var topicsTemplate = template.Must(template.New("topics").Parse(kTopicDescTemplate))

func newTopicsHandler(descs []*utils.TopicDesc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if e := topicsTemplate.Execute(w, descs); e != nil {
			http.Error(w, e.Error(), http.StatusInternalServerError)
			glog.Errorf("Cannot execute HTML template: %v", e)
		}
	}
}

const (
	kTopicDescTemplate = `<html>
<body style="background-color: #CFEDFB">
  <table>
    <thead style="background-color: #046293; color: white;">
      <tr>
        <td>ID</td>
        <td>Frequency</td>
        <td colspan=100>Words</td>
      </tr>
    </thead>
    <tbody style="background-color: #046293; color: white;">
    {{range .}}
      <tr>
        <td>{{.Id}}</td>
        <td>{{.Nt}}</td>
        {{range .Tokens}}
          <td style="background-color: #BFEFFF;">{{.Word}}</td>
          <td style="background-color: #00A0DC; color: white;">{{.Count}}</td>
        {{end}}
      </tr>
    {{end}}
    </tbody>
  </table>
</body>
</html>
`
)
