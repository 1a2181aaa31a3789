package request

// CommitBookingRequest carries the traveller details supplied at checkout.
type CommitBookingRequest struct {
	Name   string `json:"name" validate:"max=100"`
	Phone  string `json:"phone" validate:"max=20"`
	Email  string `json:"email" validate:"omitempty,email"`
	Age    int    `json:"age" validate:"gte=0,lte=130"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female other"`
}
