package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type EmployeeProfilesRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}
