package request

import "stayspot/internal/usecase/commands"

type CreateReviewRequest struct {
	Review string `json:"review" binding:"required"`
	Stars  int    `json:"stars" binding:"required"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		Rating:  r.Stars,
		Comment: r.Review,
	}
}
