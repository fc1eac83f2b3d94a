package gcedomain

import (
	compute "google.golang.org/api/compute/v1"
)

// MergeMetadataItems combines two metadata item lists. Every entry of winner
// is kept, in order, followed by the entries of loser whose keys do not
// appear in winner, in their original order. A nil loser is treated as empty.
func MergeMetadataItems(winner, loser []*compute.MetadataItems) []*compute.MetadataItems {
	merged := make([]*compute.MetadataItems, 0, len(winner)+len(loser))
	merged = append(merged, winner...)

	for _, existing := range loser {
		if existing == nil {
			continue
		}
		overridden := false
		for _, item := range winner {
			if item != nil && item.Key == existing.Key {
				overridden = true
				break
			}
		}
		if !overridden {
			merged = append(merged, existing)
		}
	}
	return merged
}
