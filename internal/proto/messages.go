package proto

// Field tags follow protoc-gen-go: wire type, field number, name. The
// schema in schema.go is built from them.

type RegisterUserRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Salt     []byte `protobuf:"bytes,2,opt,name=salt,proto3" json:"salt,omitempty"`
	Verifier []byte `protobuf:"bytes,3,opt,name=verifier,proto3" json:"verifier,omitempty"`
}

type RegisterUserResponse struct {
	UserId string `protobuf:"bytes,1,opt,name=user_id,proto3" json:"user_id,omitempty"`
}

type GetSaltRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

type GetSaltResponse struct {
	Salt []byte `protobuf:"bytes,1,opt,name=salt,proto3" json:"salt,omitempty"`
}

type LoginRequest struct {
	Username          string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	VerifierCandidate []byte `protobuf:"bytes,2,opt,name=verifier_candidate,proto3" json:"verifier_candidate,omitempty"`
}

type LoginResponse struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,proto3" json:"refresh_token,omitempty"`
	UserId       string `protobuf:"bytes,3,opt,name=user_id,proto3" json:"user_id,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `protobuf:"bytes,1,opt,name=refresh_token,proto3" json:"refresh_token,omitempty"`
}

type RefreshTokenResponse struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,proto3" json:"refresh_token,omitempty"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

type GetPreferenceRequest struct{}

// GetPreferenceResponse carries Found=false when the user never saved a theme.
type GetPreferenceResponse struct {
	Theme string `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
	Found bool   `protobuf:"varint,2,opt,name=found,proto3" json:"found,omitempty"`
}

type UpsertPreferenceRequest struct {
	Theme string `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
}

type UpsertPreferenceResponse struct {
	Theme string `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
}
