package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"message":        "メッセージ",
	"answer":         "回答",
	"boss_id":        "ボスID",
	"user_battle_id": "バトルID",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 必要に応じて、個別のエラーメッセージを上書き・カスタマイズ
	// registerTranslation は、メッセージテンプレートを登録するヘルパー関数
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	// oneof は選択肢を列挙する
	Validator.RegisterTranslation("oneof", Trans, func(ut ut.Translator) error {
		return ut.Add("oneof", "{0}は[{1}]のいずれかで指定してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("oneof", translateFieldName(fe.Field()), fe.Param())
		return t
	})
	// 文字数制限
	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}文字以上で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("min", translateFieldName(fe.Field()), fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}文字以下で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", translateFieldName(fe.Field()), fe.Param())
		return t
	})
}

// translateFieldName は json タグ名を日本語の項目名に変換する (未登録ならそのまま)
func translateFieldName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}
