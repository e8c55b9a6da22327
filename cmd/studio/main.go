package main

import "github.com/cleitonmarx/symbiont-ai-studio/internal/app"

func main() {
	err := app.NewStudioApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
