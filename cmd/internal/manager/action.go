package manager

// Action is one of the choices on the manager menu.
type Action int

const (
	// AddStudent adds or replaces a student.
	AddStudent Action = iota + 1
	// ViewStudents prints every student.
	ViewStudents
	// EditStudent changes a student's age and score.
	EditStudent
	// DeleteStudent removes a student.
	DeleteStudent
	// Exit ends the session.
	Exit
)

var actionNames = [...]string{
	AddStudent:    "Add Student",
	ViewStudents:  "View Students",
	EditStudent:   "Edit Student",
	DeleteStudent: "Delete Student",
	Exit:          "Exit",
}

func (a Action) String() string {
	if a < AddStudent || a > Exit {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction converts a menu selection into an Action.
func ParseAction(choice string) (Action, bool) {
	switch choice {
	case "1":
		return AddStudent, true
	case "2":
		return ViewStudents, true
	case "3":
		return EditStudent, true
	case "4":
		return DeleteStudent, true
	case "5":
		return Exit, true
	}
	return 0, false
}
