package docusign

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wurt83ow/docusign-skill/internal/store"
	"github.com/wurt83ow/docusign-skill/internal/store/mock"
)

type fakeAPI struct {
	loginInfo   *LoginInformation
	loginErr    error
	createErr   error
	accountID   string
	envelope    EnvelopeDefinition
	createCalls int
}

func (f *fakeAPI) Login(ctx context.Context) (*LoginInformation, error) {
	return f.loginInfo, f.loginErr
}

func (f *fakeAPI) CreateEnvelope(ctx context.Context, accountID string, def EnvelopeDefinition) (*EnvelopeSummary, error) {
	f.createCalls++
	f.accountID = accountID
	f.envelope = def
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &EnvelopeSummary{EnvelopeID: "env-1", Status: def.Status}, nil
}

var testTemplate = Template{ID: "tpl-1", RoleName: "Signer"}

func TestSenderSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStore(ctrl)
	s.EXPECT().
		FindRecipient(gomock.Any(), "John Doe").
		Return(store.Recipient{Name: "John Doe", Email: "john.doe@example.com"}, nil)

	api := &fakeAPI{loginInfo: &LoginInformation{LoginAccounts: []LoginAccount{
		{AccountID: "first"}, {AccountID: "second"},
	}}}

	summary, err := NewSender(api, s, testTemplate).Send(context.Background(), SignatureRequest{
		Template: "Contract",
		Receiver: "John Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "env-1", summary.EnvelopeID)

	assert.Equal(t, "first", api.accountID)
	assert.Equal(t, EnvelopeDefinition{
		EmailSubject: DefaultEmailSubject,
		TemplateID:   "tpl-1",
		TemplateRoles: []TemplateRole{
			{RoleName: "Signer", Name: "John Doe", Email: "john.doe@example.com"},
		},
		Status: EnvelopeStatusSent,
	}, api.envelope)
}

func TestSenderPlaceholderSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStore(ctrl)
	s.EXPECT().FindRecipient(gomock.Any(), "Jane Roe").Return(store.Recipient{}, store.ErrNotFound)
	s.EXPECT().FindRecipient(gomock.Any(), "Broken").Return(store.Recipient{}, errors.New("connection refused"))

	sender := NewSender(&fakeAPI{}, s, testTemplate)
	assert.Equal(t, PlaceholderSigner, sender.ResolveSigner(context.Background(), "Jane Roe"))
	assert.Equal(t, PlaceholderSigner, sender.ResolveSigner(context.Background(), "Broken"))
}

func TestSenderErrors(t *testing.T) {
	loginErr := &APIError{StatusCode: 401, ErrorCode: "USER_AUTHENTICATION_FAILED"}
	createErr := &APIError{StatusCode: 400, ErrorCode: "TEMPLATE_ID_INVALID"}

	testCases := []struct {
		name        string
		api         *fakeAPI
		wantErr     error
		createCalls int
	}{
		{
			name:    "login failed",
			api:     &fakeAPI{loginErr: loginErr},
			wantErr: loginErr,
		},
		{
			name:    "no accounts",
			api:     &fakeAPI{loginInfo: &LoginInformation{}},
			wantErr: ErrNoLoginAccounts,
		},
		{
			name: "create failed",
			api: &fakeAPI{
				loginInfo: &LoginInformation{LoginAccounts: []LoginAccount{{AccountID: "1"}}},
				createErr: createErr,
			},
			wantErr:     createErr,
			createCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockStore(ctrl)
			s.EXPECT().FindRecipient(gomock.Any(), gomock.Any()).Return(store.Recipient{}, store.ErrNotFound)

			_, err := NewSender(tc.api, s, testTemplate).Send(context.Background(), SignatureRequest{Receiver: "x"})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.createCalls, tc.api.createCalls)
		})
	}
}
