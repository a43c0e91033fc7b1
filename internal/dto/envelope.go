package dto

// Envelope is the uniform JSON wrapper for every API response.
// Success responses carry data; failures carry only the message.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(data interface{}) Envelope { return Envelope{Success: true, Data: data} }

func OKMessage(msg string, data interface{}) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

func Fail(msg string) Envelope { return Envelope{Success: false, Message: msg} }
