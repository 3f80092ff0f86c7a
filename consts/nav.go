package consts

const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneQuestion = '?'
	RuneHash     = '#'
)

const (
	PathRoot    = "/"
	ParamMarker = ":"
)
