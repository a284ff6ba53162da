package logger

const GameStartMsg = "遊戲開始！ renderer: %s, seed: %d"
const GameOverMsg = "遊戲結束！ 比分 %d : %d"

const PlayerScoredMsg = "玩家得分"

const RunFailMsg = "遊戲執行失敗: %v"
const ConfigLoadFailMsg = "讀取設定失敗: %v"
