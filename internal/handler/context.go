package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	MyInfoCtx       ContextKey = "myInfo"
	EmployeeCtx     ContextKey = "employee"
	ShiftRequestCtx ContextKey = "shiftRequest"
)
