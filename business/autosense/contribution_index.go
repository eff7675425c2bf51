package autosense

import "spectraSense/domain"

// ContributionNode is one feature in the contribution index.
type ContributionNode struct {
	FeatureName  string
	Contribution float64

	left, right *ContributionNode
}

// ContributionIndex is an unbalanced binary search tree keyed by contribution.
// Smaller contributions go left, equal or larger go right, so the rightmost
// node is the maximum and among equal maxima it is the one inserted last.
type ContributionIndex struct {
	root *ContributionNode
	size int
}

func NewContributionIndex() *ContributionIndex {
	return &ContributionIndex{}
}

func (idx *ContributionIndex) Len() int {
	return idx.size
}

func (idx *ContributionIndex) Insert(featureName string, contribution float64) {
	node := &ContributionNode{FeatureName: featureName, Contribution: contribution}
	idx.size++

	if idx.root == nil {
		idx.root = node
		return
	}

	cur := idx.root
	for {
		if contribution < cur.Contribution {
			if cur.left == nil {
				cur.left = node
				return
			}
			cur = cur.left
			continue
		}

		if cur.right == nil {
			cur.right = node
			return
		}
		cur = cur.right
	}
}

// FindMax returns the node with the largest contribution.
func (idx *ContributionIndex) FindMax() (ContributionNode, error) {
	if idx.root == nil {
		return ContributionNode{}, domain.ErrEmptyStructure
	}

	cur := idx.root
	for cur.right != nil {
		cur = cur.right
	}

	return ContributionNode{
		FeatureName:  cur.FeatureName,
		Contribution: cur.Contribution,
	}, nil
}
