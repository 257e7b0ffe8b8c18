package reolink

import "github.com/spec-kit/camera-gateway/internal/domain"

// Vendor responses share a {code, msg, data} envelope; code 0 means success.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	} `json:"data"`
}

type cameraResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Status int    `json:"status"`
		Name   string `json:"name"`
		UID    string `json:"uid"`
	} `json:"data"`
}

type commandResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type presetsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Presets []domain.Preset `json:"presets"`
	} `json:"data"`
}
