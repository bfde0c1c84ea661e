package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Post validation errors.
var (
	ErrEmptyPostID          = errors.New("post ID cannot be empty")
	ErrEmptyPostTitle       = errors.New("post title cannot be empty")
	ErrEmptyPostDescription = errors.New("post description cannot be empty")
	ErrEmptyPostContent     = errors.New("post content cannot be empty")
	ErrPostWithoutAuthors   = errors.New("post must have at least one author")
	ErrPostWithoutCategory  = errors.New("post must have at least one category")
)

// Post is the aggregate root of the blog domain. It owns its comments
// (deleting a post deletes them) and participates in many-to-many
// associations with authors and categories.
//
// Association mutation goes through the Attach/Detach methods so both sides
// of the in-memory graph stay consistent within one unit of work.
type Post struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	Authors     []*Author   `json:"authors"`
	Categories  []*Category `json:"categories"`
	Comments    []*Comment  `json:"comments"`
}

// NewPost creates a new Post with a generated ID and empty association sets.
// Associations are attached afterwards; AssertPublishable enforces the
// at-least-one rules before the post is persisted.
func NewPost(title, description, content string) (*Post, error) {
	post := &Post{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Content:     content,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks the post's own fields. Association cardinality is checked
// separately by AssertPublishable since a post under construction is allowed
// to be temporarily empty.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}
	if p.Title == "" {
		return ErrEmptyPostTitle
	}
	if p.Description == "" {
		return ErrEmptyPostDescription
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyPostContent
	}
	return nil
}

// AssertPublishable enforces the creation-time invariants: a post must
// reference at least one author and at least one category.
func (p *Post) AssertPublishable() error {
	if len(p.Authors) == 0 {
		return ErrPostWithoutAuthors
	}
	if len(p.Categories) == 0 {
		return ErrPostWithoutCategory
	}
	return nil
}

// AttachAuthor links the author to this post and this post to the author.
// Attaching an already attached author is a no-op.
func (p *Post) AttachAuthor(author *Author) {
	for _, a := range p.Authors {
		if a.ID == author.ID {
			return
		}
	}
	p.Authors = append(p.Authors, author)
	author.Posts = append(author.Posts, p)
}

// DetachAuthor removes the author from this post and this post from the
// author's post set.
func (p *Post) DetachAuthor(author *Author) {
	p.Authors = removeAuthor(p.Authors, author.ID)
	author.Posts = removePost(author.Posts, p.ID)
}

// AttachCategory links the category to this post and this post to the
// category. Attaching an already attached category is a no-op.
func (p *Post) AttachCategory(category *Category) {
	for _, c := range p.Categories {
		if c.ID == category.ID {
			return
		}
	}
	p.Categories = append(p.Categories, category)
	category.Posts = append(category.Posts, p)
}

// DetachCategory removes the category from this post and this post from the
// category's post set.
func (p *Post) DetachCategory(category *Category) {
	p.Categories = removeCategory(p.Categories, category.ID)
	category.Posts = removePost(category.Posts, p.ID)
}

// AttachComment adds a comment to this post and sets the comment's owning
// post. A comment cannot exist without an owning post.
func (p *Post) AttachComment(comment *Comment) {
	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
}

// Equal reports whether two posts denote the same article, compared by the
// natural key (title, content) rather than by ID.
func (p *Post) Equal(other *Post) bool {
	if other == nil {
		return false
	}
	return p.Title == other.Title && p.Content == other.Content
}

func removeAuthor(authors []*Author, id uuid.UUID) []*Author {
	out := authors[:0]
	for _, a := range authors {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func removeCategory(categories []*Category, id uuid.UUID) []*Category {
	out := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func removePost(posts []*Post, id uuid.UUID) []*Post {
	out := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
