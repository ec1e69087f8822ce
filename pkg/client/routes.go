package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Core

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/health", nil)
}

// Stats calls GET /stats.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/stats", nil)
}

// Init calls GET /init.
func (c *Client) Init(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/init", nil)
}

// Tasks

func (c *Client) ListTasks(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks", nil)
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/tasks", req)
}

func (c *Client) SearchTasks(ctx context.Context, query string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks/search?q="+url.QueryEscape(query), nil)
}

func (c *Client) SuggestTasks(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks/suggest", nil)
}

func (c *Client) ValidateTask(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/tasks/validate", nil)
}

func (c *Client) GetTask(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), req)
}

func (c *Client) DeleteTask(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil)
}

func (c *Client) TaskInsights(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id)+"/insights", nil)
}

func (c *Client) SimilarTasks(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id)+"/similar", nil)
}

// Memories

func (c *Client) ListMemories(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories", nil)
}

func (c *Client) CreateMemory(ctx context.Context, req CreateMemoryRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/memories", req)
}

// MemoryTypes calls GET /memories/types, which answers with a bare
// array rather than an envelope.
func (c *Client) MemoryTypes(ctx context.Context) ([]string, error) {
	data, err := c.do(ctx, http.MethodGet, "/memories/types", nil)
	if err != nil || data == nil {
		return nil, err
	}
	var types []string
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) SecretMemories(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/secret", nil)
}

func (c *Client) HumanMemories(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/human", nil)
}

func (c *Client) ShortTermMemories(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/short", nil)
}

func (c *Client) LongTermMemories(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/long", nil)
}

func (c *Client) EmotionalMemories(ctx context.Context, emotion string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/emotional/"+url.PathEscape(emotion), nil)
}

func (c *Client) GetMemory(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/memories/"+url.PathEscape(id), nil)
}

// Ideas

func (c *Client) ListIdeas(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/ideas", nil)
}

func (c *Client) CreateIdea(ctx context.Context, req CreateIdeaRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/ideas", req)
}

func (c *Client) GetIdea(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/ideas/"+url.PathEscape(id), nil)
}

// Agents

func (c *Client) ListAgents(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/agents", nil)
}

func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/agents", req)
}

func (c *Client) AvailableAgents(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/agents/available", nil)
}

func (c *Client) GetAgent(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/agents/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateAgent(ctx context.Context, id, status string) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, "/agents/"+url.PathEscape(id), map[string]string{"status": status})
}

func (c *Client) DeleteAgent(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/agents/"+url.PathEscape(id), nil)
}

func (c *Client) AgentStatus(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/agents/"+url.PathEscape(id)+"/status", nil)
}

// Code chunks

func (c *Client) ListChunks(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/chunks", nil)
}

func (c *Client) CreateChunk(ctx context.Context, req CreateChunkRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/chunks", req)
}

func (c *Client) ReadyChunks(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/chunks/ready", nil)
}

func (c *Client) ChunkGraph(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/chunks/graph", nil)
}

func (c *Client) GetChunk(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/chunks/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateChunk(ctx context.Context, id, status string) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, "/chunks/"+url.PathEscape(id), map[string]string{"status": status})
}

func (c *Client) DeleteChunk(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/chunks/"+url.PathEscape(id), nil)
}

// Training data

func (c *Client) ListTraining(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/training", nil)
}

func (c *Client) CreateTraining(ctx context.Context, req CreateTrainingRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/training", req)
}

func (c *Client) ExportTraining(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/training/export", nil)
}

func (c *Client) TrainingStats(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/training/stats", nil)
}

func (c *Client) GetTraining(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/training/"+url.PathEscape(id), nil)
}

func (c *Client) UpdateTraining(ctx context.Context, id string, quality *int) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, "/training/"+url.PathEscape(id), map[string]*int{"quality": quality})
}

func (c *Client) DeleteTraining(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/training/"+url.PathEscape(id), nil)
}

// Error records

func (c *Client) ListErrors(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/errors", nil)
}

func (c *Client) CreateError(ctx context.Context, req CreateErrorRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/errors", req)
}

func (c *Client) SearchErrors(ctx context.Context, query string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/errors/search?q="+url.QueryEscape(query), nil)
}

func (c *Client) GetError(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/errors/"+url.PathEscape(id), nil)
}

func (c *Client) DeleteError(ctx context.Context, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/errors/"+url.PathEscape(id), nil)
}

// Projects

func (c *Client) ListProjects(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/projects", nil)
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/projects", req)
}

func (c *Client) GetProject(ctx context.Context, name string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/projects/"+url.PathEscape(name), nil)
}

func (c *Client) UpdateProject(ctx context.Context, name, description string) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, "/projects/"+url.PathEscape(name), map[string]string{"description": description})
}

func (c *Client) DeleteProject(ctx context.Context, name string) (map[string]any, error) {
	return c.object(ctx, http.MethodDelete, "/projects/"+url.PathEscape(name), nil)
}

// Chat

func (c *Client) ProcessChat(ctx context.Context, message string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/chat/process", map[string]string{"message": message})
}

func (c *Client) AgentChat(ctx context.Context, agentID, message string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/chat/agent/"+url.PathEscape(agentID), map[string]string{"message": message})
}

func (c *Client) ChatHistory(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/chat/history", nil)
}

// Analytics and time tracking

func (c *Client) TaskAnalytics(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/analytics/tasks", nil)
}

func (c *Client) AgentAnalytics(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/analytics/agents", nil)
}

func (c *Client) PerformanceAnalytics(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/analytics/performance", nil)
}

func (c *Client) StartTimeTracking(ctx context.Context, taskID string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/time/start/"+url.PathEscape(taskID), nil)
}

func (c *Client) StopTimeTracking(ctx context.Context, taskID string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/time/stop/"+url.PathEscape(taskID), nil)
}

func (c *Client) TimeReport(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/time/report", nil)
}

// Queue

func (c *Client) PlanQueueItem(ctx context.Context, req PlanQueueItemRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/queue/plan", req)
}

func (c *Client) ListQueue(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/queue/list", nil)
}

func (c *Client) QueueBacklog(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/queue/list/backlog", nil)
}

func (c *Client) QueueActive(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/queue/list/active", nil)
}

func (c *Client) QueueComplete(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/queue/list/complete", nil)
}

func (c *Client) StartQueueSession(ctx context.Context, itemID string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/queue/start/"+url.PathEscape(itemID), nil)
}

// EndQueueSession calls POST /queue/end/{sessionID}. Success is a 204
// with no body, so there is no result to return.
func (c *Client) EndQueueSession(ctx context.Context, sessionID string) error {
	_, err := c.do(ctx, http.MethodPost, "/queue/end/"+url.PathEscape(sessionID), nil)
	return err
}

// API keys

func (c *Client) RegisterAPIKey(ctx context.Context, userID string) (map[string]any, error) {
	body := map[string]string{}
	if userID != "" {
		body["user_id"] = userID
	}
	return c.object(ctx, http.MethodPost, "/api/register", body)
}

func (c *Client) CheckAPIKey(ctx context.Context, req CheckAPIKeyRequest) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/api/check", req)
}

// Backups

func (c *Client) CreateBackup(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/backup", nil)
}

func (c *Client) ListBackups(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/backups", nil)
}

func (c *Client) RestoreBackup(ctx context.Context, name string) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/restore/"+url.PathEscape(name), nil)
}

// Stubs

func (c *Client) SemanticSearch(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/semantic/search", nil)
}

func (c *Client) AIInsights(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, "/insights", nil)
}

func (c *Client) MLProcess(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/ml/process", nil)
}

func (c *Client) MaestroCollect(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, "/maestro/collect", nil)
}
