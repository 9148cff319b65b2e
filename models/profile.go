package models

// Profile defines the structure for user profiles
type Profile struct {
	PK        string   `dynamodbav:"PK" json:"-"`
	SK        string   `dynamodbav:"SK" json:"-"`
	Type      string   `dynamodbav:"type" json:"-"`
	UserID    string   `dynamodbav:"userId" json:"userId"`
	Email     string   `dynamodbav:"email" json:"email"`
	Role      string   `dynamodbav:"role,omitempty" json:"role,omitempty"`
	Tier      string   `dynamodbav:"tier,omitempty" json:"tier,omitempty"`
	Tags      []string `dynamodbav:"tags,omitempty" json:"tags"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Normalize applies defaults for optional fields absent in storage.
func (p *Profile) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
