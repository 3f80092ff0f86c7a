package consts

const (
	MethodGet  = "GET"
	MethodHead = "HEAD"
)

const (
	StatusOK       = 200
	StatusNotFound = 404
)
