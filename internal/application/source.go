package application

import "context"

// CommandSource supplies free-text commands, e.g. the output of a
// speech-to-text front end. The controller only ever sees the string.
type CommandSource interface {
	Start(ctx context.Context) error
	Stop() error
	NextCommand(ctx context.Context) (string, error)
	Name() string
}
