package api_test

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestUsersService_UploadProfilePicture(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newBackendMocks(ctrl)
	recorded := &recordedRequest{}
	mocks.respond(
		http.StatusOK,
		`{"message":"Profile picture uploaded successfully","url":"/static/profile-pictures/abc.png"}`,
		recorded,
	)

	client, _ := mocks.client(t)
	picture, err := client.Users.UploadProfilePicture(
		context.Background(),
		"avatar.png",
		strings.NewReader("fake png bytes"),
	)
	if err != nil {
		t.Fatalf("UploadProfilePicture() error = %v", err)
	}

	if recorded.method != http.MethodPost {
		t.Errorf("method = %s; want POST", recorded.method)
	}
	if recorded.path != "/api/users/me/profile-picture" {
		t.Errorf("path = %s; want /api/users/me/profile-picture", recorded.path)
	}

	mediaType, params, err := mime.ParseMediaType(recorded.header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("ParseMediaType() error = %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %s; want multipart/form-data", mediaType)
	}

	reader := multipart.NewReader(bytes.NewReader(recorded.body), params["boundary"])
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("NextPart() error = %v", err)
	}
	if part.FormName() != "file" {
		t.Errorf("form name = %q; want file", part.FormName())
	}
	if part.FileName() != "avatar.png" {
		t.Errorf("file name = %q; want avatar.png", part.FileName())
	}
	content, err := io.ReadAll(part)
	if err != nil {
		t.Fatalf("read part: %v", err)
	}
	if string(content) != "fake png bytes" {
		t.Errorf("part content = %q; want fake png bytes", content)
	}

	if picture.URL != "/static/profile-pictures/abc.png" {
		t.Errorf("URL = %q; want /static/profile-pictures/abc.png", picture.URL)
	}
}
