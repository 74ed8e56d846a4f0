package httperror

type Error struct {
	Message string `json:"error" example:"there is no debt matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
