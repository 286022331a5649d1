package clickup

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// Workspace discovery. The tree is assembled by a fixed fan-out of
// read-only calls: all teams, then spaces per team, then folders and
// lists per space. Results are re-nested in request order, never
// completion order.

func notArchived() url.Values {
	v := url.Values{}
	v.Add("archived", "false")
	return v
}

// Teams returns all teams visible to the token.
func (c *Client) Teams(ctx context.Context) ([]service.Team, error) {
	var resp struct {
		Teams []service.Team `json:"teams"`
	}
	if err := c.do(ctx, http.MethodGet, "/team", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// Spaces returns the non-archived spaces of a team.
func (c *Client) Spaces(ctx context.Context, teamID string) ([]service.Space, error) {
	var resp struct {
		Spaces []service.Space `json:"spaces"`
	}
	if err := c.do(ctx, http.MethodGet, "/team/"+teamID+"/space", notArchived(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// Folders returns the non-archived folders of a space, each with its
// embedded lists.
func (c *Client) Folders(ctx context.Context, spaceID string) ([]service.Folder, error) {
	var resp struct {
		Folders []service.Folder `json:"folders"`
	}
	if err := c.do(ctx, http.MethodGet, "/space/"+spaceID+"/folder", notArchived(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// Lists returns all non-archived lists directly in a space, including
// lists that also appear inside folders.
func (c *Client) Lists(ctx context.Context, spaceID string) ([]service.List, error) {
	var resp struct {
		Lists []service.List `json:"lists"`
	}
	if err := c.do(ctx, http.MethodGet, "/space/"+spaceID+"/list", notArchived(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// WorkspaceStructure implements service.Service.
func (c *Client) WorkspaceStructure(ctx context.Context) (service.Workspace, error) {
	teams, err := c.Teams(ctx)
	if err != nil {
		return service.Workspace{}, err
	}

	nodes := make([]service.TeamNode, len(teams))
	errs := make([]error, len(teams))

	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, team service.Team) {
			defer wg.Done()
			nodes[i], errs[i] = c.teamNode(ctx, team)
		}(i, team)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return service.Workspace{}, err
		}
	}
	return service.Workspace{Teams: nodes}, nil
}

func (c *Client) teamNode(ctx context.Context, team service.Team) (service.TeamNode, error) {
	spaces, err := c.Spaces(ctx, team.ID)
	if err != nil {
		return service.TeamNode{}, err
	}

	nodes := make([]service.SpaceNode, len(spaces))
	errs := make([]error, len(spaces))

	var wg sync.WaitGroup
	for i, space := range spaces {
		wg.Add(1)
		go func(i int, space service.Space) {
			defer wg.Done()
			nodes[i], errs[i] = c.spaceNode(ctx, space)
		}(i, space)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return service.TeamNode{}, err
		}
	}
	return service.TeamNode{Team: team, Spaces: nodes}, nil
}

// spaceNode fetches a space's folders and lists in parallel. A folder
// fetch failure means "no folders" (some spaces have the folder feature
// disabled); a list fetch failure propagates.
func (c *Client) spaceNode(ctx context.Context, space service.Space) (service.SpaceNode, error) {
	var (
		folders   []service.Folder
		lists     []service.List
		folderErr error
		listErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		folders, folderErr = c.Folders(ctx, space.ID)
	}()
	go func() {
		defer wg.Done()
		lists, listErr = c.Lists(ctx, space.ID)
	}()
	wg.Wait()

	if listErr != nil {
		return service.SpaceNode{}, listErr
	}
	if folderErr != nil {
		c.logger.Debug("folder fetch failed, treating as no folders",
			"space", space.ID, "err", folderErr)
		folders = nil
	}
	if folders == nil {
		folders = []service.Folder{}
	}

	return service.SpaceNode{
		Space:   space,
		Folders: folders,
		Lists:   folderlessLists(lists, folders),
	}, nil
}

// folderlessLists returns the lists of a space that are not embedded in
// any folder. The two endpoints are separate, so ids are compared after
// trimming whitespace rather than assuming identical representations.
func folderlessLists(all []service.List, folders []service.Folder) []service.List {
	inFolder := make(map[string]bool)
	for _, folder := range folders {
		for _, list := range folder.Lists {
			inFolder[strings.TrimSpace(list.ID)] = true
		}
	}

	result := []service.List{}
	for _, list := range all {
		if !inFolder[strings.TrimSpace(list.ID)] {
			result = append(result, list)
		}
	}
	return result
}
