package queries

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrSearchItemQueryIsNotConstructed = errors.New(
	"SearchItemQuery must be created via NewSearchItemQuery constructor",
)

// SearchItemQuery finds a stowed item by exact id or by a case-insensitive
// fragment of its name. The id wins when both are given.
type SearchItemQuery struct {
	itemID   string
	itemName string
	guard    guard.ConstructorGuard
}

func NewSearchItemQuery(itemID, itemName string) (SearchItemQuery, error) {
	if itemID == "" && itemName == "" {
		return SearchItemQuery{}, errs.NewValueIsRequiredError("itemId or itemName")
	}
	return SearchItemQuery{itemID: itemID, itemName: itemName, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchItemQuery) ItemID() string {
	return q.itemID
}

func (q SearchItemQuery) ItemName() string {
	return q.itemName
}

func (q SearchItemQuery) Validate() error {
	return q.guard.Validate(ErrSearchItemQueryIsNotConstructed)
}

// SearchItemResponse is empty with Found unset when no placed item matched.
type SearchItemResponse struct {
	Found          bool
	ItemID         string
	Name           string
	ContainerID    string
	Zone           string
	Start          kernel.Coordinates
	End            kernel.Coordinates
	IsWaste        bool
	RetrievalSteps int
	Instructions   []string
}
