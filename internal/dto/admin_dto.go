package dto

// QuestionSeedDTO is used within CatalogSeedDTO for admin catalog seeding.
type QuestionSeedDTO struct {
	ModuleName string `json:"module_name" binding:"required"`
	Dimension  string `json:"dimension" binding:"required"`
	Text       string `json:"text" binding:"required"`
	Active     *bool  `json:"active"`
}

// CatalogSeedDTO is for admins to seed the question catalog in bulk.
type CatalogSeedDTO struct {
	Questions []QuestionSeedDTO `json:"questions" binding:"required,min=1,dive"`
}

type CatalogSeedResponseDTO struct {
	Created int `json:"created"`
	Modules int `json:"modules"`
}
