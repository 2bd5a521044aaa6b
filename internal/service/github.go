package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/logger"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// hiddenLabelColor is the color used when the hidden label is first created
// on a repository.
const hiddenLabelColor = "0f6fff"

// RepositorySelection is a repository offered to the configuration UI
type RepositorySelection struct {
	ID    int64  `json:"id" example:"123456"`
	Owner string `json:"owner" example:"acme"`
	Name  string `json:"name" example:"widgets"`
}

// ProjectSelection is a classic repository project offered to the configuration UI
type ProjectSelection struct {
	ID   int64  `json:"id" example:"789"`
	Name string `json:"name" example:"Roadmap"`
}

// MilestoneSelection is a repository milestone offered to the configuration UI
type MilestoneSelection struct {
	Number int    `json:"number" example:"4"`
	Title  string `json:"title" example:"v1.0"`
	State  string `json:"state" example:"open"`
}

// IssueRequest carries the fields the sync layer may set on an issue
type IssueRequest struct {
	Title     string
	Body      string
	Labels    []string
	Milestone *int
	State     *string
}

// IssueResult is the subset of the created/updated issue the core records
type IssueResult struct {
	ID     int64
	Number int
	URL    string
	State  string
}

// GitHubService issues the permitted tracker calls with the acting user's own
// token. Transient failures retry with backoff; 401/403/404 never retry.
// Calls are always made outside of database transactions.
type GitHubService struct {
	timeout    time.Duration
	maxRetries int
	baseURL    string
	log        *logger.Logger
}

// NewGitHubService creates a new GitHub service
func NewGitHubService(timeoutSec, maxRetries int) *GitHubService {
	if timeoutSec <= 0 {
		timeoutSec = 20
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &GitHubService{
		timeout:    time.Duration(timeoutSec) * time.Second,
		maxRetries: maxRetries,
		log:        logger.New().WithField("component", "github"),
	}
}

// client builds a go-github client authenticated as the acting user. The
// token lives only for the duration of the call chain.
func (s *GitHubService) client(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = s.timeout
	c := github.NewClient(httpClient)
	if s.baseURL != "" {
		if enterprise, err := c.WithEnterpriseURLs(s.baseURL, s.baseURL); err == nil {
			c = enterprise
		}
	}
	return c
}

// classify maps a failed call to the error taxonomy
func classify(resp *github.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		status = ghErr.Response.StatusCode
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusNotFound, status == http.StatusGone:
		return &apperrors.ExternalServiceError{Status: status, Transient: false, Message: err.Error()}
	case status >= 500:
		return &apperrors.ExternalServiceError{Status: status, Transient: true, Message: err.Error()}
	case status == 0:
		// Network-level failure, no HTTP status
		return &apperrors.ExternalServiceError{Transient: true, Message: err.Error()}
	default:
		return &apperrors.ExternalServiceError{Status: status, Transient: false, Message: err.Error()}
	}
}

// withRetry runs the call, retrying transient failures with exponential
// backoff up to the configured bound.
func (s *GitHubService) withRetry(ctx context.Context, op string, fn func() (*github.Response, error)) error {
	backoff := 500 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		resp, err := fn()
		if err == nil {
			return nil
		}
		lastErr = classify(resp, err)

		var extErr *apperrors.ExternalServiceError
		if !errors.As(lastErr, &extErr) || !extErr.Transient {
			return lastErr
		}
		if attempt == s.maxRetries {
			break
		}

		s.log.WithFields(map[string]interface{}{
			"operation": op,
			"attempt":   attempt + 1,
		}).Warn("transient github failure, retrying")

		select {
		case <-ctx.Done():
			return &apperrors.ExternalServiceError{Transient: true, Message: ctx.Err().Error()}
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return lastErr
}

// TestConnection verifies the token can reach the API
func (s *GitHubService) TestConnection(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	return s.withRetry(ctx, "test_connection", func() (*github.Response, error) {
		_, resp, err := client.Users.Get(ctx, "")
		return resp, err
	})
}

// ListRepositories lists the repositories visible to the token
func (s *GitHubService) ListRepositories(ctx context.Context, token string) ([]RepositorySelection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	var repos []RepositorySelection
	opts := &github.RepositoryListOptions{ListOptions: github.ListOptions{PerPage: 100}}

	for {
		var page []*github.Repository
		err := s.withRetry(ctx, "list_repositories", func() (*github.Response, error) {
			result, resp, err := client.Repositories.List(ctx, "", opts)
			if err == nil {
				page = result
				if resp.NextPage == 0 {
					opts.Page = 0
				} else {
					opts.Page = resp.NextPage
				}
			}
			return resp, err
		})
		if err != nil {
			return nil, err
		}
		for _, repo := range page {
			if repo.GetOwner() == nil {
				continue
			}
			repos = append(repos, RepositorySelection{
				ID:    repo.GetID(),
				Owner: repo.GetOwner().GetLogin(),
				Name:  repo.GetName(),
			})
		}
		if opts.Page == 0 {
			break
		}
	}
	return repos, nil
}

// ListProjects lists classic projects of a repository
func (s *GitHubService) ListProjects(ctx context.Context, token, owner, repo string) ([]ProjectSelection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	var projects []ProjectSelection

	err := s.withRetry(ctx, "list_projects", func() (*github.Response, error) {
		result, resp, err := client.Repositories.ListProjects(ctx, owner, repo, &github.ProjectListOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		})
		if err == nil {
			projects = projects[:0]
			for _, p := range result {
				projects = append(projects, ProjectSelection{ID: p.GetID(), Name: p.GetName()})
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListMilestones lists all milestones of a repository
func (s *GitHubService) ListMilestones(ctx context.Context, token, owner, repo string) ([]MilestoneSelection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	var milestones []MilestoneSelection

	err := s.withRetry(ctx, "list_milestones", func() (*github.Response, error) {
		result, resp, err := client.Issues.ListMilestones(ctx, owner, repo, &github.MilestoneListOptions{
			State:       "all",
			ListOptions: github.ListOptions{PerPage: 100},
		})
		if err == nil {
			milestones = milestones[:0]
			for _, m := range result {
				milestones = append(milestones, MilestoneSelection{
					Number: m.GetNumber(),
					Title:  m.GetTitle(),
					State:  m.GetState(),
				})
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

// EnsureLabel creates the label on the repository if it does not exist yet.
// Existing labels are reused as-is so two collaborators on the same
// repository never produce a second label object.
func (s *GitHubService) EnsureLabel(ctx context.Context, token, owner, repo, label string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	_, _, err := client.Issues.GetLabel(ctx, owner, repo, label)
	if err == nil {
		return nil
	}

	createErr := s.withRetry(ctx, "create_label", func() (*github.Response, error) {
		_, resp, err := client.Issues.CreateLabel(ctx, owner, repo, &github.Label{
			Name:  github.String(label),
			Color: github.String(hiddenLabelColor),
		})
		// 422 means another collaborator created it concurrently
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return resp, nil
		}
		return resp, err
	})
	return createErr
}

// CreateIssue creates an issue carrying the scope's hidden label
func (s *GitHubService) CreateIssue(ctx context.Context, token, owner, repo string, req IssueRequest) (*IssueResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	issueReq := &github.IssueRequest{
		Title:  github.String(req.Title),
		Body:   github.String(req.Body),
		Labels: &req.Labels,
	}
	if req.Milestone != nil {
		issueReq.Milestone = req.Milestone
	}

	var result *IssueResult
	err := s.withRetry(ctx, "create_issue", func() (*github.Response, error) {
		issue, resp, err := client.Issues.Create(ctx, owner, repo, issueReq)
		if err == nil {
			result = issueResult(issue)
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateIssue edits an existing issue
func (s *GitHubService) UpdateIssue(ctx context.Context, token, owner, repo string, number int, req IssueRequest) (*IssueResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	issueReq := &github.IssueRequest{}
	if req.Title != "" {
		issueReq.Title = github.String(req.Title)
	}
	if req.Body != "" {
		issueReq.Body = github.String(req.Body)
	}
	if len(req.Labels) > 0 {
		issueReq.Labels = &req.Labels
	}
	if req.Milestone != nil {
		issueReq.Milestone = req.Milestone
	}
	if req.State != nil {
		issueReq.State = req.State
	}

	var result *IssueResult
	err := s.withRetry(ctx, "update_issue", func() (*github.Response, error) {
		issue, resp, err := client.Issues.Edit(ctx, owner, repo, number, issueReq)
		if err == nil {
			result = issueResult(issue)
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CloseIssue closes an issue
func (s *GitHubService) CloseIssue(ctx context.Context, token, owner, repo string, number int) (*IssueResult, error) {
	return s.UpdateIssue(ctx, token, owner, repo, number, IssueRequest{State: github.String("closed")})
}

// CommentOnIssue adds a comment to an issue
func (s *GitHubService) CommentOnIssue(ctx context.Context, token, owner, repo string, number int, body string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)
	return s.withRetry(ctx, "comment_on_issue", func() (*github.Response, error) {
		_, resp, err := client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
			Body: github.String(body),
		})
		return resp, err
	})
}

// AddIssueToProject puts the issue on the first column of a classic project
func (s *GitHubService) AddIssueToProject(ctx context.Context, token string, projectID, issueID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client := s.client(ctx, token)

	var columns []*github.ProjectColumn
	err := s.withRetry(ctx, "list_project_columns", func() (*github.Response, error) {
		result, resp, err := client.Projects.ListProjectColumns(ctx, projectID, &github.ListOptions{PerPage: 1})
		if err == nil {
			columns = result
		}
		return resp, err
	})
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return &apperrors.ExternalServiceError{Message: "project has no columns"}
	}

	return s.withRetry(ctx, "create_project_card", func() (*github.Response, error) {
		_, resp, err := client.Projects.CreateProjectCard(ctx, columns[0].GetID(), &github.ProjectCardOptions{
			ContentID:   issueID,
			ContentType: "Issue",
		})
		return resp, err
	})
}

func issueResult(issue *github.Issue) *IssueResult {
	if issue == nil {
		return nil
	}
	return &IssueResult{
		ID:     issue.GetID(),
		Number: issue.GetNumber(),
		URL:    issue.GetHTMLURL(),
		State:  issue.GetState(),
	}
}
