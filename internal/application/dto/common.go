package dto

// Response es el sobre JSON uniforme de la API:
// {success, message?, data?, count?, error?}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList construye una respuesta exitosa de listado con count.
func OKList(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail construye una respuesta de error con código de la taxonomía.
func Fail(message, code string) Response {
	return Response{Success: false, Message: message, Error: code}
}
