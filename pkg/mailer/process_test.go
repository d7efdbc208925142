package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	tests := map[string]struct {
		body    string
		sendErr error
		want    Outcome
		wantErr bool
	}{
		"delivered":        {body: `{"to":"a@b.c","template":"welcome","data":{"Name":"Asha"}}`, want: Ack},
		"not json":         {body: `{"to":`, want: Drop, wantErr: true},
		"unknown template": {body: `{"to":"a@b.c","template":"promo"}`, want: Drop, wantErr: true},
		"no recipient":     {body: `{"subject":"Hi"}`, want: Drop, wantErr: true},
		"send failed":      {body: `{"to":"a@b.c","subject":"Hi","text":"x"}`, sendErr: errors.New("timeout"), want: Requeue, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := &recordingSender{err: tc.sendErr}
			got, err := Process(context.Background(), s, []byte(tc.body))
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.c", s.to)
		})
	}
}
