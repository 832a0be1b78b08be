package models

// PostSort names the orderings offered by the browse lists.
type PostSort string

const (
	SortLatest      PostSort = "latest"
	SortLikes       PostSort = "likes"
	SortSaves       PostSort = "saves"
	SortReviews     PostSort = "reviews"
	SortAnticipated PostSort = "anticipated"
	SortComments    PostSort = "comments"
)

// OrderClause maps s onto posts columns. Unknown values sort by latest.
func (s PostSort) OrderClause() string {
	switch s {
	case SortLikes:
		return "likes DESC, created_at DESC"
	case SortSaves:
		return "saved_count DESC, created_at DESC"
	case SortReviews:
		return "been_there_count DESC, created_at DESC"
	case SortAnticipated:
		return "want_to_go_count DESC, created_at DESC"
	case SortComments:
		return "comment_count DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}
