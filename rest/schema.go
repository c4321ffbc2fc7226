package rest

type registerFeedRequest struct {
	URL              string `json:"url"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	IntegrationName  string `json:"integration_name"`
	IntegrationAlias string `json:"integration_alias"`
}

type updateFeedRequest struct {
	URL              *string `json:"url"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	IntegrationName  *string `json:"integration_name"`
	IntegrationAlias *string `json:"integration_alias"`
}

type healthResponse struct {
	Status string `json:"status"`
}
