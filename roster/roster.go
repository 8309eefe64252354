package roster

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a student name is not in the roster.
var ErrNotFound = errors.New("student not found")

// Student is a single roster record. The name is also
// the record's key.
type Student struct {
	Name  string
	Age   uint32
	Score uint32
}

// NewStudent creates a new student.
func NewStudent(name string, age, score uint32) Student {
	return Student{Name: name, Age: age, Score: score}
}

// Roster is an in-memory collection of students keyed by name.
// It is not safe for concurrent use.
type Roster struct {
	class map[string]*Student
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{class: make(map[string]*Student)}
}

// Add will insert the student, replacing any student
// that already has the same name.
func (r *Roster) Add(s Student) {
	r.class[s.Name] = &s
}

// List returns a copy of every student sorted by name.
func (r *Roster) List() []Student {
	list := make([]Student, 0, len(r.class))
	for _, s := range r.class {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// Get looks up a student by exact name.
func (r *Roster) Get(name string) (Student, bool) {
	s, ok := r.class[name]
	if !ok {
		return Student{}, false
	}
	return *s, true
}

// Edit updates the age and score of the student with the given
// name. Returns false if there is no such student.
func (r *Roster) Edit(name string, age, score uint32) bool {
	s, ok := r.class[name]
	if !ok {
		return false
	}
	s.Age = age
	s.Score = score
	return true
}

// Remove deletes a student by name and reports whether
// the student was there.
func (r *Roster) Remove(name string) bool {
	if _, ok := r.class[name]; !ok {
		return false
	}
	delete(r.class, name)
	return true
}

// Len is the number of students in the roster.
func (r *Roster) Len() int {
	return len(r.class)
}
