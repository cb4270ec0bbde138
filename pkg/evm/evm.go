// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tokenforge/tokenforge-cli/pkg/utils"
	"github.com/tokenforge/tokenforge-cli/pkg/ux"
)

const (
	BaseFeeFactor               = 2
	MaxPriorityFeePerGas        = 2500000000 // 2.5 gwei
	NativeTransferGas    uint64 = 21_000
	repeatsOnFailure            = 3
	sleepBetweenRepeats         = 1 * time.Second
)

func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else if parsedURL.Scheme == "" {
		return false, nil
	}
	return true, nil
}

func GetClient(rpcURL string) (*ethclient.Client, error) {
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return nil, err
	}
	if !hasScheme {
		rpcURL = "http://" + rpcURL
	}
	var client *ethclient.Client
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		client, err = ethclient.DialContext(ctx, rpcURL)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure connecting to %s: %w", rpcURL, err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return client, err
}

func GetChainID(client *ethclient.Client) (*big.Int, error) {
	var (
		chainID *big.Int
		err     error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		chainID, err = client.ChainID(ctx)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure getting chain id: %w", err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return chainID, err
}

func GetAddressBalance(
	client *ethclient.Client,
	addressStr string,
) (*big.Int, error) {
	address := common.HexToAddress(addressStr)
	var (
		balance *big.Int
		err     error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		balance, err = client.BalanceAt(ctx, address, nil)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure obtaining balance for %s: %w", addressStr, err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return balance, err
}

func GetContractBytecode(
	client *ethclient.Client,
	contractAddressStr string,
) ([]byte, error) {
	contractAddress := common.HexToAddress(contractAddressStr)
	var (
		code []byte
		err  error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		code, err = client.CodeAt(ctx, contractAddress, nil)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure obtaining code for %s: %w", contractAddressStr, err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return code, err
}

func ContractAlreadyDeployed(
	client *ethclient.Client,
	contractAddress string,
) (bool, error) {
	if bs, err := GetContractBytecode(client, contractAddress); err != nil {
		return false, err
	} else {
		return len(bs) != 0, nil
	}
}

func NonceAt(
	client *ethclient.Client,
	addressStr string,
) (uint64, error) {
	address := common.HexToAddress(addressStr)
	var (
		nonce uint64
		err   error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		nonce, err = client.NonceAt(ctx, address, nil)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure obtaining nonce for %s: %w", addressStr, err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return nonce, err
}

func SuggestGasTipCap(client *ethclient.Client) (*big.Int, error) {
	var (
		gasTipCap *big.Int
		err       error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		gasTipCap, err = client.SuggestGasTipCap(ctx)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure obtaining gas tip cap: %w", err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return gasTipCap, err
}

func EstimateBaseFee(client *ethclient.Client) (*big.Int, error) {
	var (
		baseFee *big.Int
		err     error
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		header, headerErr := client.HeaderByNumber(ctx, nil)
		cancel()
		if headerErr == nil {
			if header.BaseFee == nil {
				return nil, fmt.Errorf("chain head has no base fee, is the endpoint pre-EIP-1559?")
			}
			baseFee = new(big.Int).Set(header.BaseFee)
			err = nil
			break
		}
		err = fmt.Errorf("failure estimating base fee: %w", headerErr)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return baseFee, err
}

// CalculateTxParams returns the gasFeeCap, gasTipCap, and nonce to be used
// when constructing a transaction from address
func CalculateTxParams(
	client *ethclient.Client,
	addressStr string,
) (*big.Int, *big.Int, uint64, error) {
	baseFee, err := EstimateBaseFee(client)
	if err != nil {
		return nil, nil, 0, err
	}
	gasTipCap, err := SuggestGasTipCap(client)
	if err != nil {
		return nil, nil, 0, err
	}
	nonce, err := NonceAt(client, addressStr)
	if err != nil {
		return nil, nil, 0, err
	}
	gasFeeCap := baseFee.Mul(baseFee, big.NewInt(BaseFeeFactor))
	gasFeeCap.Add(gasFeeCap, big.NewInt(MaxPriorityFeePerGas))
	return gasFeeCap, gasTipCap, nonce, nil
}

func SendTransaction(
	client *ethclient.Client,
	tx *types.Transaction,
) error {
	var err error
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPIContext()
		err = client.SendTransaction(ctx, tx)
		cancel()
		if err == nil {
			break
		}
		err = fmt.Errorf("failure sending transaction %s: %w", tx.Hash().Hex(), err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return err
}

func WaitForTransaction(
	client *ethclient.Client,
	tx *types.Transaction,
) (*types.Receipt, bool, error) {
	var (
		err     error
		receipt *types.Receipt
		success bool
	)
	for i := 0; i < repeatsOnFailure; i++ {
		ctx, cancel := utils.GetAPILargeContext()
		receipt, err = bind.WaitMined(ctx, client, tx)
		cancel()
		if err == nil {
			success = receipt.Status == types.ReceiptStatusSuccessful
			break
		}
		err = fmt.Errorf("failure waiting for tx %s: %w", tx.Hash().Hex(), err)
		ux.Logger.RedXToUser("%s", err)
		time.Sleep(sleepBetweenRepeats)
	}
	return receipt, success, err
}

func GetTxOptsWithSigner(
	client *ethclient.Client,
	privateKeyStr string,
) (*bind.TransactOpts, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyStr, "0x"))
	if err != nil {
		return nil, err
	}
	chainID, err := GetChainID(client)
	if err != nil {
		return nil, fmt.Errorf("failure generating signer: %w", err)
	}
	return bind.NewKeyedTransactorWithChainID(privateKey, chainID)
}

func FundAddress(
	client *ethclient.Client,
	sourceAddressPrivateKeyStr string,
	targetAddressStr string,
	amount *big.Int,
) error {
	sourceAddressPrivateKey, err := crypto.HexToECDSA(strings.TrimPrefix(sourceAddressPrivateKeyStr, "0x"))
	if err != nil {
		return err
	}
	sourceAddress := crypto.PubkeyToAddress(sourceAddressPrivateKey.PublicKey)
	gasFeeCap, gasTipCap, nonce, err := CalculateTxParams(client, sourceAddress.Hex())
	if err != nil {
		return err
	}
	targetAddress := common.HexToAddress(targetAddressStr)
	chainID, err := GetChainID(client)
	if err != nil {
		return err
	}
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		To:        &targetAddress,
		Gas:       NativeTransferGas,
		GasFeeCap: gasFeeCap,
		GasTipCap: gasTipCap,
		Value:     amount,
	})
	txSigner := types.LatestSignerForChainID(chainID)
	signedTx, err := types.SignTx(tx, txSigner, sourceAddressPrivateKey)
	if err != nil {
		return err
	}
	if err := SendTransaction(client, signedTx); err != nil {
		return err
	}
	if _, b, err := WaitForTransaction(client, signedTx); err != nil {
		return err
	} else if !b {
		return fmt.Errorf("failure funding %s from %s amount %d", targetAddressStr, sourceAddress.Hex(), amount)
	}
	return nil
}

func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}
