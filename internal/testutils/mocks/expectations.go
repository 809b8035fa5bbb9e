// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	gamemastermock "github.com/KirkDiggler/greed-island/internal/clients/gamemaster/mock"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/greed-island/internal/repositories/session/mock"
)

// ExpectScenario sets up a single scenario reply from the game master
func ExpectScenario(client *gamemastermock.MockClient, scenario *greedisland.Scenario, err error) *gomock.Call {
	return client.EXPECT().
		RequestScenario(gomock.Any(), gomock.Any()).
		Return(scenario, err)
}

// ExpectResolution sets up a single resolution reply from the game master
func ExpectResolution(
	client *gamemastermock.MockClient, resolution *greedisland.ActionResolution, err error,
) *gomock.Call {
	return client.EXPECT().
		RequestResolution(gomock.Any(), gomock.Any()).
		Return(resolution, err)
}

// ExpectSessionGet sets up a repository read of data
func ExpectSessionGet(repo *sessionmock.MockRepository, data *session.SessionData, err error) *gomock.Call {
	input := &session.GetInput{SessionID: data.ID}
	if err != nil {
		return repo.EXPECT().Get(gomock.Any(), input).Return(nil, err)
	}
	return repo.EXPECT().Get(gomock.Any(), input).Return(&session.GetOutput{Session: data}, nil)
}
