package dto

type CategoryRequest struct {
	ID           string   `json:"id"`
	CategoryName string   `json:"categoryName"`
	Images       []string `json:"images"`
}

// Document returns only the submitted fields so a partial update does not
// blank out the rest of the category record.
func (r CategoryRequest) Document() map[string]interface{} {
	doc := map[string]interface{}{}
	if r.CategoryName != "" {
		doc["categoryName"] = r.CategoryName
	}
	if r.Images != nil {
		doc["images"] = r.Images
	}
	return doc
}
