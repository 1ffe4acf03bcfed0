package terminal

import (
	"text/template"
	"time"
)

var reportFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}
