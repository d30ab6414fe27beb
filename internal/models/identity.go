package models

// IdentityMap relates Steam app ids to ITAD game ids for one run. Entries
// keep first-seen order so the pricing request and the final join are
// deterministic; a duplicate app id collapses to its first mapping.
type IdentityMap struct {
	appToITAD map[string]string
	itadToApp map[string]string
	itadIDs   []string
}

// NewIdentityMap creates an empty IdentityMap.
func NewIdentityMap() *IdentityMap {
	return &IdentityMap{
		appToITAD: make(map[string]string),
		itadToApp: make(map[string]string),
	}
}

// Add records the mapping appID -> itadID. Empty itad ids and app ids that
// were already added are ignored.
func (m *IdentityMap) Add(appID, itadID string) {
	if itadID == "" {
		return
	}
	if _, ok := m.appToITAD[appID]; ok {
		return
	}
	if _, ok := m.itadToApp[itadID]; ok {
		return
	}
	m.appToITAD[appID] = itadID
	m.itadToApp[itadID] = appID
	m.itadIDs = append(m.itadIDs, itadID)
}

// ITADIDs returns the mapped ITAD game ids in insertion order.
func (m *IdentityMap) ITADIDs() []string {
	ids := make([]string, len(m.itadIDs))
	copy(ids, m.itadIDs)
	return ids
}

// AppFor performs the inverse lookup from an ITAD game id to its app id.
func (m *IdentityMap) AppFor(itadID string) (string, bool) {
	appID, ok := m.itadToApp[itadID]
	return appID, ok
}

// Len reports the number of resolved mappings.
func (m *IdentityMap) Len() int {
	return len(m.itadIDs)
}
