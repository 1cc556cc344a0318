package models

// DefaultBlogAuthor is used when a post is created without an author.
const DefaultBlogAuthor = "Admin"

// BlogPost is an article on the site blog. Posts with Published=false are
// drafts and only reachable through the admin routes.
type BlogPost struct {
	Base      `bson:",inline"`
	Title     string `json:"title"     bson:"title"`
	Content   string `json:"content"   bson:"content"`
	Excerpt   string `json:"excerpt"   bson:"excerpt"`
	Category  string `json:"category"  bson:"category"`
	Author    string `json:"author"    bson:"author"`
	Image     string `json:"image"     bson:"image"` // URL or data URI, optional
	Published bool   `json:"published" bson:"published"`
}
