package store

import (
	"brandistry/internal/model"
)

// recomputeClientStatsLocked rebuilds every client's derived counters from
// scratch by filtering the full project and asset collections. O(projects +
// assets) per client, run for all clients after each relevant mutation;
// acceptable at this data scale, and it guarantees the counters can never
// drift from the collections they summarize.
func (s *Store) recomputeClientStatsLocked() {
	for i := range s.clients {
		c := &s.clients[i]

		total, active := 0, 0
		for j := range s.projects {
			if s.projects[j].ClientID != c.ID {
				continue
			}
			total++
			if s.projects[j].Status == model.ProjectActive {
				active++
			}
		}

		delivered := 0
		for j := range s.assets {
			if s.assets[j].ClientID == c.ID && s.assets[j].Status == model.AssetDelivered {
				delivered++
			}
		}

		c.TotalProjects = total
		c.ActiveProjects = active
		c.AssetsDelivered = delivered
	}
}

func (s *Store) Client(id string) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			return s.clients[i], nil
		}
	}
	return model.Client{}, ErrNotFound
}
