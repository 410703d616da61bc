package customhost

type Object struct{}

type Registered struct{}

type EditorOnly struct{}

type Tool struct{}
