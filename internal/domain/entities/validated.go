package entities

// ValidatedUser wraps a User that has passed entity validation. Repositories
// only accept the validated form, so an unchecked entity cannot reach the
// store.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}
	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
