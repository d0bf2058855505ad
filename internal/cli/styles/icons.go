package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconLogs    = "\uf0f6" // file-text
	IconCursor  = "\uf054" // chevron-right
	IconPane    = "\uf0db" // columns
	IconTree    = "\uf1bb" // tree
	IconArrow   = "\uf061" // arrow-right
	IconDoctor  = "\uf0f1" // stethoscope
	IconTerm    = "\uf120" // terminal
)
