package errorsUtils

import (
	"fmt"
	"runtime"
)

// WrapPathErr annotates err with the calling function and line, keeping the
// original error available to errors.Is / errors.As.
func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
