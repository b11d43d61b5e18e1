package rectsel

import (
	"fmt"
)

type ErrConnection struct {
	Display string
	Err     error
}

var _ error = ErrConnection{}

func (e ErrConnection) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to open display %s", e.Display)
	}
	return fmt.Sprintf("failed to open display %s: %v", e.Display, e.Err)
}

func (e ErrConnection) Unwrap() error {
	return e.Err
}

type ErrCapture struct {
	Err error
}

var _ error = ErrCapture{}

func (e ErrCapture) Error() string {
	return fmt.Sprintf("unable to grab the pointer: %v", e.Err)
}

func (e ErrCapture) Unwrap() error {
	return e.Err
}

type ErrGeometryQuery struct {
	Err error
}

var _ error = ErrGeometryQuery{}

func (e ErrGeometryQuery) Error() string {
	return fmt.Sprintf("failed to get root window geometry: %v", e.Err)
}

func (e ErrGeometryQuery) Unwrap() error {
	return e.Err
}
