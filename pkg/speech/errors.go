package speech

import "errors"

var (
	ErrEmptyPath         = errors.New("speech: audio path is empty")
	ErrFFmpegUnavailable = errors.New("speech: ffmpeg not found in PATH")
	ErrUnknownProvider   = errors.New("speech: unknown provider")
)
