package shared

import (
	"strings"
	"sync"
)

//Errors collect errors, supports parallel errors collecting.
type Errors struct {
	locker sync.Mutex
	errors []error
}

//NewErrors creates errors collector
func NewErrors() *Errors {
	return &Errors{}
}

//Append appends non nil error.
func (r *Errors) Append(err error) {
	if err == nil {
		return
	}
	r.locker.Lock()
	defer r.locker.Unlock()
	r.errors = append(r.errors, err)
}

//Errors returns collected errors
func (r *Errors) Errors() []error {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.errors
}

//Err returns nil if no error was collected, otherwise the collector itself
func (r *Errors) Err() error {
	r.locker.Lock()
	defer r.locker.Unlock()
	if len(r.errors) == 0 {
		return nil
	}
	return r
}

//Error returns all encountered errors
func (r *Errors) Error() string {
	r.locker.Lock()
	defer r.locker.Unlock()
	messages := make([]string, 0, len(r.errors))
	for _, err := range r.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}
