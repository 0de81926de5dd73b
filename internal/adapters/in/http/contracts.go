package http

import (
	"time"

	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the id of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type registerAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type itemRequest struct {
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type createPickupRequest struct {
	Items         []itemRequest  `json:"items"`
	ScheduledDate string         `json:"scheduledDate"`
	ScheduledTime string         `json:"scheduledTime"`
	Address       addressRequest `json:"address"`
}

type completePickupRequest struct {
	ClosingNote string `json:"closingNote"`
}

type submitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type upsertAgentProfileRequest struct {
	BusinessName       string   `json:"businessName"`
	Services           []string `json:"services"`
	AcceptedCategories []string `json:"acceptedCategories"`
}

// toItems converts the request lines into domain items, failing on the
// first invalid one.
func (r createPickupRequest) toItems() ([]pickup.Item, error) {
	items := make([]pickup.Item, 0, len(r.Items))
	for _, line := range r.Items {
		category, err := pickup.CategoryFromString(line.Category)
		if err != nil {
			return nil, err
		}
		item, err := pickup.NewItem(category, line.Quantity, line.Description)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r createPickupRequest) toSchedule() (pickup.Schedule, error) {
	date, err := time.Parse(dateLayout, r.ScheduledDate)
	if err != nil {
		return pickup.Schedule{}, errs.NewValueIsInvalidErrorWithCause("scheduledDate", err)
	}
	return pickup.NewSchedule(date, r.ScheduledTime)
}

func (r createPickupRequest) toAddress() (pickup.Address, error) {
	return pickup.NewAddress(
		r.Address.Street,
		r.Address.City,
		r.Address.State,
		r.Address.ZipCode,
		r.Address.Country,
	)
}

func (r upsertAgentProfileRequest) toServices() ([]agent.Service, error) {
	services := make([]agent.Service, 0, len(r.Services))
	for _, name := range r.Services {
		service, err := agent.ServiceFromString(name)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func (r upsertAgentProfileRequest) toCategories() ([]pickup.Category, error) {
	categories := make([]pickup.Category, 0, len(r.AcceptedCategories))
	for _, name := range r.AcceptedCategories {
		category, err := pickup.CategoryFromString(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

type accountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type feedbackResponse struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type pickupResponse struct {
	ID            string                  `json:"id"`
	OwnerID       string                  `json:"ownerId"`
	AgentID       *string                 `json:"agentId,omitempty"`
	Status        string                  `json:"status"`
	Items         []queries.ItemResponse  `json:"items"`
	ScheduledDate string                  `json:"scheduledDate"`
	ScheduledTime string                  `json:"scheduledTime"`
	Address       addressResponse         `json:"address"`
	ClosingNote   string                  `json:"closingNote,omitempty"`
	Feedback      *feedbackResponse       `json:"feedback,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

type agentProfileResponse struct {
	AccountID          string    `json:"accountId"`
	BusinessName       string    `json:"businessName"`
	Services           []string  `json:"services"`
	AcceptedCategories []string  `json:"acceptedCategories"`
	Verified           bool      `json:"verified"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toAccountResponse(account queries.AccountResponse) accountResponse {
	return accountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		Phone:     account.Phone,
		CreatedAt: account.CreatedAt,
	}
}

func toPickupResponse(p queries.PickupResponse) pickupResponse {
	response := pickupResponse{
		ID:            p.ID.String(),
		OwnerID:       p.OwnerID.String(),
		Status:        p.Status,
		Items:         p.Items,
		ScheduledDate: p.ScheduledDate.Format(dateLayout),
		ScheduledTime: p.ScheduledTime,
		Address: addressResponse{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
			Country: p.Address.Country,
		},
		ClosingNote: p.ClosingNote,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.AgentID != nil {
		agentID := p.AgentID.String()
		response.AgentID = &agentID
	}
	if p.Feedback != nil {
		response.Feedback = &feedbackResponse{
			Rating:  p.Feedback.Rating,
			Comment: p.Feedback.Comment,
		}
	}

	return response
}

func toPickupResponses(pickups []queries.PickupResponse) []pickupResponse {
	responses := make([]pickupResponse, len(pickups))
	for i, p := range pickups {
		responses[i] = toPickupResponse(p)
	}
	return responses
}

func toAgentProfileResponse(profile queries.AgentProfileResponse) agentProfileResponse {
	return agentProfileResponse{
		AccountID:          profile.AccountID.String(),
		BusinessName:       profile.BusinessName,
		Services:           profile.Services,
		AcceptedCategories: profile.AcceptedCategories,
		Verified:           profile.Verified,
		UpdatedAt:          profile.UpdatedAt,
	}
}
