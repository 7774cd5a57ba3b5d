package iocli

//go:generate moq -out io_mock.go . IO

// IO abstracts terminal interaction for the CLI commands
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}
