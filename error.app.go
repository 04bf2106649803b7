package bidwhist

import (
	"errors"
	"fmt"
)

type AppCode uint8

const (
	AppCodeZero    AppCode = iota // 保留
	GeneralCode                   //一般應用程式錯誤
	ConfigCode                    //設定檔或環境變數有問題
	DecisionCode                  //玩家離開或決策來源失敗
	AdvisorCode                   //顧問服務(OpenAI/遠端)無法建立
	TranscriptCode                //牌局紀錄檔有關
	RuleCode                      //牌局規則或張數檢查失敗,應該是Bug
)

type (
	AppErr struct {
		reason interface{}
		Err    error  //原始錯誤
		Msg    string //給使用者看的提示訊息
		Code   AppCode
	}
)

func (appErr *AppErr) Error() string {
	if appErr.Err != nil {
		return fmt.Sprintf("%d: %s: %s", appErr.Code, appErr.Msg, appErr.Err)
	}
	return fmt.Sprintf("%d: %s", appErr.Code, appErr.Msg)
}

func (appErr *AppErr) Unwrap() error {
	return appErr.Err
}

// Reason 發生錯誤時的附帶資訊(座位,局數...)
func (appErr *AppErr) Reason() interface{} {
	return appErr.reason
}

func AppError(code AppCode, msg string, reason interface{}) (err *AppErr) {
	err = new(AppErr)
	err.Msg = msg
	err.Code = code
	err.reason = reason
	if e, ok := reason.(error); ok {
		err.Err = e
	}
	return
}

// CodeOf 取出錯誤碼,非 AppErr 一律視為 GeneralCode
func CodeOf(err error) AppCode {
	var appErr *AppErr
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return GeneralCode
}
