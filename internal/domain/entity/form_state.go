package entity

// FormState is the state of an address add/edit form.
type FormState int

const (
	FormStateIdle FormState = iota
	FormStateLoading
	FormStateEditing
	FormStateSubmitting
	FormStateSuccess
)

var formStateNames = map[FormState]string{
	FormStateIdle:       "idle",
	FormStateLoading:    "loading",
	FormStateEditing:    "editing",
	FormStateSubmitting: "submitting",
	FormStateSuccess:    "success",
}

func (s FormState) String() string {
	if name, ok := formStateNames[s]; ok {
		return name
	}

	return "unknown"
}
