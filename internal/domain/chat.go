package domain

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// Valid reports whether r is a known chat role.
func (r ChatRole) Valid() bool {
	switch r {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System:
		return true
	}
	return false
}
