package dto

type SkillCategoryResponse struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}
