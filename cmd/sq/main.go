package main

import "studyquest/cmd/sq/root"

func main() {
	root.Execute()
}
